// Package access modela la identidad del llamador y las reglas de autorización
// sobre los registros de negocio.
package access

import (
	"fmt"

	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

// Resource recurso protegido por la política.
const ResourceBusiness = "business"

// Action operación sobre el recurso.
type Action string

const (
	ActionCreate Action = "create" // alta de registro
	ActionReport Action = "report" // reportes agregados y consultas por campo
)

// RoleSystem rol interno de los procesos que no son un trabajador (consumidor AMQP, importador).
const RoleSystem entity.WorkerRole = "SYSTEM"

// Principal identidad explícita del llamador. Se pasa a cada caso de uso.
type Principal struct {
	UserID       string
	RestaurantID string
	Role         entity.WorkerRole
}

// SystemPrincipal identidad de un proceso interno que escribe en nombre del restaurante.
func SystemPrincipal(restaurantID string) Principal {
	return Principal{UserID: "system", RestaurantID: restaurantID, Role: RoleSystem}
}

// Errores de autorización.
var (
	ErrMissingRestaurant = domain.NewError(domain.ErrUnauthorized, "Restaurant ID not found")
	ErrMissingRole       = domain.NewError(domain.ErrUnauthorized, "Role not found")
	ErrReportRestricted  = domain.NewError(domain.ErrForbidden, "Route restricted only to ADMIN or MANAGER")
)

// Policy decide si un rol puede ejecutar una acción sobre un recurso.
type Policy interface {
	Allowed(role entity.WorkerRole, resource string, action Action) (bool, error)
}

// Guard aplica la política a un Principal.
type Guard struct {
	policy Policy
}

// NewGuard construye el guard.
func NewGuard(policy Policy) *Guard {
	return &Guard{policy: policy}
}

// Authenticate exige identidad con restaurante. No revisa el rol.
func (g *Guard) Authenticate(p Principal) error {
	if p.RestaurantID == "" {
		return ErrMissingRestaurant
	}
	return nil
}

// Authorize exige identidad, rol y permiso de la política para la acción.
func (g *Guard) Authorize(p Principal, action Action) error {
	if err := g.Authenticate(p); err != nil {
		return err
	}
	if p.Role == "" {
		return ErrMissingRole
	}
	ok, err := g.policy.Allowed(p.Role, ResourceBusiness, action)
	if err != nil {
		return fmt.Errorf("access: evaluar política: %w", err)
	}
	if !ok {
		if action == ActionReport {
			return ErrReportRestricted
		}
		return domain.NewError(domain.ErrForbidden, "Role %s cannot %s business records", p.Role, action)
	}
	return nil
}

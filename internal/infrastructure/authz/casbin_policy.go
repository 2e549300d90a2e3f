// Package authz implementa access.Policy con un enforcer RBAC de Casbin.
// Modelo y política vienen embebidos en el binario.
package authz

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

//go:embed model.conf
var modelConf string

//go:embed policy.csv
var policyCSV string

var _ access.Policy = (*CasbinPolicy)(nil)

// CasbinPolicy decisiones de acceso por rol.
type CasbinPolicy struct {
	enforcer casbin.IEnforcer
}

// NewCasbinPolicy construye el enforcer con la política embebida.
func NewCasbinPolicy() (*CasbinPolicy, error) {
	return NewCasbinPolicyFrom(modelConf, policyCSV)
}

// NewCasbinPolicyFrom permite inyectar modelo y política (tests, overrides).
func NewCasbinPolicyFrom(modelText, policy string) (*CasbinPolicy, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz: modelo: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(strings.TrimSpace(policy)))
	if err != nil {
		return nil, fmt.Errorf("authz: enforcer: %w", err)
	}
	return &CasbinPolicy{enforcer: enforcer}, nil
}

// Allowed evalúa (rol, recurso, acción).
func (p *CasbinPolicy) Allowed(role entity.WorkerRole, resource string, action access.Action) (bool, error) {
	return p.enforcer.Enforce(string(role), resource, string(action))
}

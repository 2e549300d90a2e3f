// Package business contiene las reglas del registro de negocio: validación de
// registros, catálogo de campos consultables y agregaciones puras.
package business

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

// Membership valida pertenencia a un conjunto cerrado sin conocer su tipo concreto.
type Membership interface {
	Field() string
	Values() []string
	Validate(value string) error
}

// ClosedSet conjunto cerrado de valores válidos para un campo enumerado.
type ClosedSet[T ~string] struct {
	field  string
	plural string
	values []T
}

// NewClosedSet construye el conjunto. plural se usa en los mensajes ("week days").
func NewClosedSet[T ~string](field, plural string, values ...T) ClosedSet[T] {
	return ClosedSet[T]{field: field, plural: plural, values: values}
}

// Field nombre del campo validado.
func (s ClosedSet[T]) Field() string { return s.field }

// Values valores permitidos en orden de declaración.
func (s ClosedSet[T]) Values() []string {
	out := make([]string, len(s.values))
	for i, v := range s.values {
		out[i] = string(v)
	}
	return out
}

// Contains indica si value pertenece al conjunto (comparación exacta).
func (s ClosedSet[T]) Contains(value string) bool {
	return slices.Contains(s.values, T(value))
}

// Validate devuelve *ValidationError con la lista completa de valores válidos.
func (s ClosedSet[T]) Validate(value string) error {
	if s.Contains(value) {
		return nil
	}
	return &ValidationError{
		Message: fmt.Sprintf("Invalid %s value: %q. Valid %s: %s",
			s.field, value, s.plural, strings.Join(s.Values(), ", ")),
		Fields:  []string{s.field},
		Allowed: s.Values(),
	}
}

// Parse valida y convierte al tipo del enum.
func (s ClosedSet[T]) Parse(value string) (T, error) {
	if err := s.Validate(value); err != nil {
		return "", err
	}
	return T(value), nil
}

// Conjuntos del dominio.
var (
	WeekDays = NewClosedSet("weekDay", "week days",
		entity.WeekDaySunday, entity.WeekDayMonday, entity.WeekDayTuesday, entity.WeekDayWednesday,
		entity.WeekDayThursday, entity.WeekDayFriday, entity.WeekDaySaturday,
	)
	PaymentMethods = NewClosedSet("paymentMethod", "payment methods",
		entity.PaymentCash, entity.PaymentCreditCard, entity.PaymentDebitCard,
		entity.PaymentPix, entity.PaymentMealVoucher,
	)
	Origins = NewClosedSet("origin", "origins",
		entity.OriginInHouse, entity.OriginDeliveryApp, entity.OriginPhone,
		entity.OriginWhatsApp, entity.OriginWebsite,
	)
	ItemCategories = NewClosedSet("category", "categories",
		entity.CategoryAppetizer, entity.CategoryMainCourse, entity.CategorySideDish,
		entity.CategoryDessert, entity.CategoryDrink, entity.CategoryAlcoholicDrink,
	)
	OrderTypes = NewClosedSet("orderType", "order types",
		entity.OrderTypeTable, entity.OrderTypeDelivery, entity.OrderTypeTakeout,
	)
	WorkerRoles = NewClosedSet("role", "roles",
		entity.RoleAdmin, entity.RoleManager, entity.RoleChef,
		entity.RoleBartender, entity.RoleWaiter, entity.RoleDelivery,
	)
)

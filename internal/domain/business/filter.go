package business

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// Filter consulta ya normalizada sobre un solo campo.
// Lower y Upper tienen el tipo Go del campo: time.Time, decimal.Decimal, int, string o bool.
type Filter struct {
	Field      QueryField
	Comparator Comparator
	Lower      any
	Upper      any
}

// NewFilter traduce los valores crudos de la consulta a un Filter.
//   - Rangos: lower es obligatorio; si upper falta se toma upper = lower.
//   - Fechas sin hora: lower abre el día a las 00:00:00.000 y upper lo cierra a las 23:59:59.999.
//   - Enumerados e identidades: lower es el valor buscado y upper se ignora.
//   - Flags: sin argumentos.
func NewFilter(field QueryField, lower, upper string, loc *time.Location) (Filter, error) {
	if loc == nil {
		loc = time.Local
	}
	lower, upper = strings.TrimSpace(lower), strings.TrimSpace(upper)
	f := Filter{Field: field, Comparator: field.Comparator()}

	switch field.Kind {
	case KindFlag:
		f.Lower, f.Upper = true, true
		return f, nil

	case KindEnum:
		if lower == "" {
			return Filter{}, requiredParam(field.Param)
		}
		if err := field.Set.Validate(lower); err != nil {
			return Filter{}, err
		}
		f.Lower, f.Upper = lower, lower
		return f, nil

	case KindIdentity:
		if lower == "" {
			return Filter{}, requiredParam(field.Param)
		}
		f.Lower, f.Upper = lower, lower
		return f, nil
	}

	if lower == "" {
		return Filter{}, &ValidationError{
			Message: fmt.Sprintf("lower bound is required: %s must be provided for %s", ParamLower, field.Key),
			Fields:  []string{ParamLower},
		}
	}
	if upper == "" {
		upper = lower
	}

	var err error
	switch field.Kind {
	case KindDateRange:
		if f.Lower, err = parseDateBound(lower, false, loc); err != nil {
			return Filter{}, invalidBound(ParamLower, field, "a date (YYYY-MM-DD or RFC3339)")
		}
		if f.Upper, err = parseDateBound(upper, true, loc); err != nil {
			return Filter{}, invalidBound(ParamUpper, field, "a date (YYYY-MM-DD or RFC3339)")
		}
	case KindDecimalRange:
		if f.Lower, err = decimal.NewFromString(lower); err != nil {
			return Filter{}, invalidBound(ParamLower, field, "a number")
		}
		if f.Upper, err = decimal.NewFromString(upper); err != nil {
			return Filter{}, invalidBound(ParamUpper, field, "a number")
		}
	case KindIntRange:
		if f.Lower, err = strconv.Atoi(lower); err != nil {
			return Filter{}, invalidBound(ParamLower, field, "an integer")
		}
		if f.Upper, err = strconv.Atoi(upper); err != nil {
			return Filter{}, invalidBound(ParamUpper, field, "an integer")
		}
	case KindTextRange:
		f.Lower, f.Upper = lower, upper
	default:
		return Filter{}, fmt.Errorf("business: tipo de campo no soportado %d", field.Kind)
	}
	return f, nil
}

// parseDateBound acepta YYYY-MM-DD (día completo en loc) o RFC3339 (instante exacto).
func parseDateBound(s string, upper bool, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		if upper {
			return EndOfDay(t), nil
		}
		return t, nil
	}
	return parseInstant(s)
}

// parseInstant RFC3339. Un "+" del offset sin codificar en la URL llega como espacio.
func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil && strings.Count(s, " ") == 1 && strings.Contains(s, "T") {
		return time.Parse(time.RFC3339Nano, strings.Replace(s, " ", "+", 1))
	}
	return t, err
}

// StartOfDay 00:00:00.000 del día de t en su zona horaria.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay 23:59:59.999 del día de t en su zona horaria.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

func requiredParam(param string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("%s is required", param),
		Fields:  []string{param},
	}
}

func invalidBound(param string, field QueryField, expected string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("%s for %s must be %s", param, field.Key, expected),
		Fields:  []string{param},
	}
}

// Matches evalúa el filtro contra un registro en memoria.
// Un campo opcional ausente nunca coincide.
func (f Filter) Matches(r *entity.BusinessRecord) bool {
	v, ok := ValueOf(r, f.Field.Key)
	if !ok {
		return false
	}
	switch val := v.(type) {
	case time.Time:
		lo, hi := f.Lower.(time.Time), f.Upper.(time.Time)
		return !val.Before(lo) && !val.After(hi)
	case decimal.Decimal:
		lo, hi := f.Lower.(decimal.Decimal), f.Upper.(decimal.Decimal)
		return val.GreaterThanOrEqual(lo) && val.LessThanOrEqual(hi)
	case int:
		lo, hi := f.Lower.(int), f.Upper.(int)
		return val >= lo && val <= hi
	case bool:
		return val == f.Lower.(bool)
	case string:
		lo, hi := f.Lower.(string), f.Upper.(string)
		if f.Comparator == Equals {
			return val == lo
		}
		return val >= lo && val <= hi
	}
	return false
}

// ValueOf extrae el valor de un campo consultable del registro.
func ValueOf(r *entity.BusinessRecord, key string) (any, bool) {
	switch key {
	case "date":
		return r.Date, true
	case "weekDay":
		return string(r.WeekDay), true
	case "hourSlot":
		return r.HourSlot, true
	case "discount":
		return r.Discount, true
	case "deliveryFee":
		if r.DeliveryFee == nil {
			return nil, false
		}
		return *r.DeliveryFee, true
	case "customerCount":
		if r.CustomerCount == nil {
			return nil, false
		}
		return *r.CustomerCount, true
	case "paymentMethod":
		return string(r.PaymentMethod), true
	case "origin":
		return string(r.Origin), true
	case "totalItemsCount":
		return r.TotalItemsCount, true
	case "timeToStartPreparing":
		return r.TimeToStartPreparing, true
	case "timePreparing":
		return r.TimePreparing, true
	case "timeToDelivery":
		if r.TimeToDelivery == nil {
			return nil, false
		}
		return *r.TimeToDelivery, true
	case "waiterId":
		return r.WaiterID, true
	case "waiterName":
		return r.WaiterName, true
	case "transactionHandlerId":
		return r.TransactionHandlerID, r.TransactionHandlerID != ""
	case "transactionHandlerName":
		return r.TransactionHandlerName, r.TransactionHandlerName != ""
	case "deliveryNeighborhood":
		return r.DeliveryNeighborhood, r.DeliveryNeighborhood != ""
	case "isCanceled":
		return r.IsCanceled, true
	case "cancellationReason":
		return r.CancellationReason, r.CancellationReason != ""
	}
	return nil, false
}

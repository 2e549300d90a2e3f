package business

// FieldKind semántica de comparación de un campo consultable.
type FieldKind int

const (
	KindDateRange    FieldKind = iota // rango inclusivo de fechas
	KindDecimalRange                  // rango inclusivo de montos
	KindIntRange                      // rango inclusivo de enteros
	KindTextRange                     // rango lexicográfico (franja horaria "HH:MM")
	KindEnum                          // igualdad contra un conjunto cerrado
	KindIdentity                      // igualdad exacta de texto no vacío
	KindFlag                          // sin argumentos: campo booleano en true
)

// Comparator operador que se aplica sobre el campo.
type Comparator int

const (
	Between Comparator = iota
	Equals
)

// Parámetros de rango comunes a todas las rutas de rango.
const (
	ParamLower = "startValue"
	ParamUpper = "endValue"
)

// QueryField entrada del catálogo de campos consultables.
type QueryField struct {
	Route string // segmento bajo /business
	Key   string // nombre del campo en JSON/BSON
	Kind  FieldKind
	Param string     // parámetro de consulta para igualdad; vacío en rangos y flags
	Set   Membership // solo KindEnum
}

// Comparator deriva el operador del tipo de campo.
func (f QueryField) Comparator() Comparator {
	switch f.Kind {
	case KindEnum, KindIdentity, KindFlag:
		return Equals
	default:
		return Between
	}
}

// IsRange indica si el campo acepta startValue/endValue.
func (f QueryField) IsRange() bool { return f.Comparator() == Between }

// QueryFields catálogo completo de consultas por campo.
var QueryFields = []QueryField{
	{Route: "date-range", Key: "date", Kind: KindDateRange},
	{Route: "week-day", Key: "weekDay", Kind: KindEnum, Param: "weekDay", Set: WeekDays},
	{Route: "hour-slot", Key: "hourSlot", Kind: KindTextRange},
	{Route: "discount", Key: "discount", Kind: KindDecimalRange},
	{Route: "delivery-fee", Key: "deliveryFee", Kind: KindDecimalRange},
	{Route: "customer-count", Key: "customerCount", Kind: KindIntRange},
	{Route: "payment-method", Key: "paymentMethod", Kind: KindEnum, Param: "paymentMethod", Set: PaymentMethods},
	{Route: "origin", Key: "origin", Kind: KindEnum, Param: "origin", Set: Origins},
	{Route: "total-items", Key: "totalItemsCount", Kind: KindIntRange},
	{Route: "time-to-start", Key: "timeToStartPreparing", Kind: KindIntRange},
	{Route: "time-preparing", Key: "timePreparing", Kind: KindIntRange},
	{Route: "time-to-delivery", Key: "timeToDelivery", Kind: KindIntRange},
	{Route: "waiter-id", Key: "waiterId", Kind: KindIdentity, Param: "waiterId"},
	{Route: "waiter-name", Key: "waiterName", Kind: KindIdentity, Param: "waiterName"},
	{Route: "transaction-handler-id", Key: "transactionHandlerId", Kind: KindIdentity, Param: "transactionHandlerId"},
	{Route: "transaction-handler-name", Key: "transactionHandlerName", Kind: KindIdentity, Param: "transactionHandlerName"},
	{Route: "delivery-neighborhood", Key: "deliveryNeighborhood", Kind: KindIdentity, Param: "neighborhood"},
	{Route: "canceled", Key: "isCanceled", Kind: KindFlag},
	{Route: "cancel-reason", Key: "cancellationReason", Kind: KindIdentity, Param: "reason"},
}

// FieldByRoute busca la entrada del catálogo por segmento de ruta.
func FieldByRoute(route string) (QueryField, bool) {
	for _, f := range QueryFields {
		if f.Route == route {
			return f, true
		}
	}
	return QueryField{}, false
}

// FieldByKey busca la entrada del catálogo por nombre de campo.
func FieldByKey(key string) (QueryField, bool) {
	for _, f := range QueryFields {
		if f.Key == key {
			return f, true
		}
	}
	return QueryField{}, false
}

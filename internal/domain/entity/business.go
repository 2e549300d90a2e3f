package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessRecord es la fotografía desnormalizada de un pedido finalizado.
// Se crea una sola vez por pedido y nunca se modifica (hecho inmutable para reportes).
type BusinessRecord struct {
	ID              string
	RestaurantID    string
	OriginalOrderID string

	Date     time.Time
	WeekDay  WeekDay
	HourSlot string // franja horaria, ej: "20:00"

	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	DeliveryFee   *decimal.Decimal // solo pedidos a domicilio
	Total         decimal.Decimal
	CustomerCount *int
	PaymentMethod PaymentMethod
	Origin        Origin

	Items           []BusinessItem
	TotalItemsCount int

	TimeToStartPreparing int // minutos
	TimePreparing        int // minutos
	OrderType            OrderType
	TimeToDelivery       *int // minutos, solo domicilios

	WaiterID               string
	WaiterName             string
	TransactionHandlerID   string // quien cerró el pago (opcional)
	TransactionHandlerName string

	DeliveryNeighborhood string

	IsCanceled         bool
	CancellationReason string

	CreatedAt time.Time
}

// BusinessItem línea desnormalizada del pedido.
type BusinessItem struct {
	ItemID     string
	ItemName   string
	Category   ItemCategory
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// IsDelivery indica si el registro corresponde a un pedido a domicilio.
func (r *BusinessRecord) IsDelivery() bool {
	return r.OrderType == OrderTypeDelivery
}

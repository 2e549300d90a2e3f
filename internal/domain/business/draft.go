package business

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Draft registro candidato tal como llega por HTTP o por la cola de pedidos.
// Los punteros distinguen "ausente" de "valor cero" (descuento 0 es un valor válido).
type Draft struct {
	OriginalOrderID *string    `json:"originalOrderId"`
	Date            *time.Time `json:"date"`
	WeekDay         *string    `json:"weekDay"`
	HourSlot        *string    `json:"hourSlot"`

	Subtotal      *decimal.Decimal `json:"subtotal"`
	Discount      *decimal.Decimal `json:"discount"`
	DeliveryFee   *decimal.Decimal `json:"deliveryFee,omitempty"`
	Total         *decimal.Decimal `json:"total"`
	CustomerCount *int             `json:"customerCount,omitempty"`
	PaymentMethod *string          `json:"paymentMethod"`
	Origin        *string          `json:"origin"`

	Items           []DraftItem `json:"itemsDenormalized"`
	TotalItemsCount *int        `json:"totalItemsCount"`

	TimeToStartPreparing *int    `json:"timeToStartPreparing"`
	TimePreparing        *int    `json:"timePreparing"`
	OrderType            *string `json:"orderType"`
	TimeToDelivery       *int    `json:"timeToDelivery,omitempty"`

	WaiterID               *string `json:"waiterId"`
	WaiterName             *string `json:"waiterName"`
	TransactionHandlerID   *string `json:"transactionHandlerId,omitempty"`
	TransactionHandlerName *string `json:"transactionHandlerName,omitempty"`

	DeliveryNeighborhood *string `json:"deliveryNeighborhood,omitempty"`

	IsCanceled         *bool   `json:"isCanceled"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// DraftItem línea candidata del pedido.
type DraftItem struct {
	ItemID     *string          `json:"itemId"`
	ItemName   *string          `json:"itemName"`
	Category   *string          `json:"category"`
	Quantity   *int             `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
	TotalPrice *decimal.Decimal `json:"totalPrice"`
}

// UnmarshalJSON acepta date como RFC3339 o como YYYY-MM-DD (medianoche, hora local del servidor).
// Una fecha ilegible se rechaza como *ValidationError sobre "date".
func (d *Draft) UnmarshalJSON(b []byte) error {
	type plain Draft
	aux := struct {
		*plain
		Date *string `json:"date"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	d.Date = nil
	if aux.Date == nil || strings.TrimSpace(*aux.Date) == "" {
		return nil
	}
	t, err := ParseRecordDate(*aux.Date, time.Local)
	if err != nil {
		return err
	}
	d.Date = &t
	return nil
}

// ParseRecordDate fecha de un registro: RFC3339 o YYYY-MM-DD en loc.
func ParseRecordDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := parseInstant(s)
	if err != nil {
		return time.Time{}, &ValidationError{
			Message: fmt.Sprintf("Invalid date value: %q. Expected YYYY-MM-DD or RFC3339", s),
			Fields:  []string{"date"},
		}
	}
	return t, nil
}

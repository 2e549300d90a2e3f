package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

// CreateBusinessRequest body de POST /business/create.
// Campos en camelCase porque es el contrato que consume el frontend React.
type CreateBusinessRequest = business.Draft

// BusinessItemResponse línea desnormalizada del registro.
type BusinessItemResponse struct {
	ItemID     string          `json:"itemId"`
	ItemName   string          `json:"itemName"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// BusinessResponse registro de negocio.
type BusinessResponse struct {
	ID                     string                 `json:"id"`
	RestaurantID           string                 `json:"restaurantId"`
	OriginalOrderID        string                 `json:"originalOrderId"`
	Date                   time.Time              `json:"date"`
	WeekDay                string                 `json:"weekDay"`
	HourSlot               string                 `json:"hourSlot"`
	Subtotal               decimal.Decimal        `json:"subtotal"`
	Discount               decimal.Decimal        `json:"discount"`
	DeliveryFee            *decimal.Decimal       `json:"deliveryFee,omitempty"`
	Total                  decimal.Decimal        `json:"total"`
	CustomerCount          *int                   `json:"customerCount,omitempty"`
	PaymentMethod          string                 `json:"paymentMethod"`
	Origin                 string                 `json:"origin"`
	Items                  []BusinessItemResponse `json:"itemsDenormalized"`
	TotalItemsCount        int                    `json:"totalItemsCount"`
	TimeToStartPreparing   int                    `json:"timeToStartPreparing"`
	TimePreparing          int                    `json:"timePreparing"`
	OrderType              string                 `json:"orderType"`
	TimeToDelivery         *int                   `json:"timeToDelivery,omitempty"`
	WaiterID               string                 `json:"waiterId"`
	WaiterName             string                 `json:"waiterName"`
	TransactionHandlerID   string                 `json:"transactionHandlerId,omitempty"`
	TransactionHandlerName string                 `json:"transactionHandlerName,omitempty"`
	DeliveryNeighborhood   string                 `json:"deliveryNeighborhood,omitempty"`
	IsCanceled             bool                   `json:"isCanceled"`
	CancellationReason     string                 `json:"cancellationReason,omitempty"`
	CreatedAt              time.Time              `json:"createdAt"`
}

// ToBusinessResponse mapea la entidad al DTO.
func ToBusinessResponse(r *entity.BusinessRecord) BusinessResponse {
	items := make([]BusinessItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, BusinessItemResponse{
			ItemID:     it.ItemID,
			ItemName:   it.ItemName,
			Category:   string(it.Category),
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return BusinessResponse{
		ID:                     r.ID,
		RestaurantID:           r.RestaurantID,
		OriginalOrderID:        r.OriginalOrderID,
		Date:                   r.Date,
		WeekDay:                string(r.WeekDay),
		HourSlot:               r.HourSlot,
		Subtotal:               r.Subtotal,
		Discount:               r.Discount,
		DeliveryFee:            r.DeliveryFee,
		Total:                  r.Total,
		CustomerCount:          r.CustomerCount,
		PaymentMethod:          string(r.PaymentMethod),
		Origin:                 string(r.Origin),
		Items:                  items,
		TotalItemsCount:        r.TotalItemsCount,
		TimeToStartPreparing:   r.TimeToStartPreparing,
		TimePreparing:          r.TimePreparing,
		OrderType:              string(r.OrderType),
		TimeToDelivery:         r.TimeToDelivery,
		WaiterID:               r.WaiterID,
		WaiterName:             r.WaiterName,
		TransactionHandlerID:   r.TransactionHandlerID,
		TransactionHandlerName: r.TransactionHandlerName,
		DeliveryNeighborhood:   r.DeliveryNeighborhood,
		IsCanceled:             r.IsCanceled,
		CancellationReason:     r.CancellationReason,
		CreatedAt:              r.CreatedAt,
	}
}

// ToBusinessResponses mapea una lista; nunca devuelve nil para serializar [] y no null.
func ToBusinessResponses(records []*entity.BusinessRecord) []BusinessResponse {
	out := make([]BusinessResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToBusinessResponse(r))
	}
	return out
}

package business

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

// Validate revisa un registro candidato y devuelve el registro aceptado o un *ValidationError.
//
// Orden de las verificaciones (se detiene en la primera categoría que falla):
//  1. campos obligatorios del registro
//  2. campos obligatorios de cada ítem (se reportan todos los ítems)
//  3. weekDay, paymentMethod, origin
//  4. categoría de cada ítem (se detiene en el primer ítem inválido)
//  5. orderType
//  6. campos de domicilio si orderType es DELIVERY
func Validate(d Draft) (*entity.BusinessRecord, error) {
	if missing := missingTopLevel(d); len(missing) > 0 {
		return nil, missingError("Missing required fields: ", missing)
	}
	if missing := missingItemFields(d.Items); len(missing) > 0 {
		return nil, missingError("Missing required fields in itemsDenormalized: ", missing)
	}

	weekDay, err := WeekDays.Parse(*d.WeekDay)
	if err != nil {
		return nil, err
	}
	payment, err := PaymentMethods.Parse(*d.PaymentMethod)
	if err != nil {
		return nil, err
	}
	origin, err := Origins.Parse(*d.Origin)
	if err != nil {
		return nil, err
	}
	items := make([]entity.BusinessItem, 0, len(d.Items))
	for _, it := range d.Items {
		category, err := ItemCategories.Parse(*it.Category)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.BusinessItem{
			ItemID:     *it.ItemID,
			ItemName:   *it.ItemName,
			Category:   category,
			Quantity:   *it.Quantity,
			UnitPrice:  *it.UnitPrice,
			TotalPrice: *it.TotalPrice,
		})
	}
	orderType, err := OrderTypes.Parse(*d.OrderType)
	if err != nil {
		return nil, err
	}
	if orderType == entity.OrderTypeDelivery {
		if missing := missingDeliveryFields(d); len(missing) > 0 {
			return nil, missingError("Missing required fields for delivery orders: ", missing)
		}
	}

	return &entity.BusinessRecord{
		OriginalOrderID:        *d.OriginalOrderID,
		Date:                   *d.Date,
		WeekDay:                weekDay,
		HourSlot:               *d.HourSlot,
		Subtotal:               *d.Subtotal,
		Discount:               *d.Discount,
		DeliveryFee:            copyDecimal(d.DeliveryFee),
		Total:                  *d.Total,
		CustomerCount:          copyInt(d.CustomerCount),
		PaymentMethod:          payment,
		Origin:                 origin,
		Items:                  items,
		TotalItemsCount:        *d.TotalItemsCount,
		TimeToStartPreparing:   *d.TimeToStartPreparing,
		TimePreparing:          *d.TimePreparing,
		OrderType:              orderType,
		TimeToDelivery:         copyInt(d.TimeToDelivery),
		WaiterID:               *d.WaiterID,
		WaiterName:             *d.WaiterName,
		TransactionHandlerID:   deref(d.TransactionHandlerID),
		TransactionHandlerName: deref(d.TransactionHandlerName),
		DeliveryNeighborhood:   deref(d.DeliveryNeighborhood),
		IsCanceled:             *d.IsCanceled,
		CancellationReason:     deref(d.CancellationReason),
	}, nil
}

func missingTopLevel(d Draft) []string {
	var missing []string
	check := func(field string, present bool) {
		if !present {
			missing = append(missing, field)
		}
	}
	check("originalOrderId", hasText(d.OriginalOrderID))
	check("date", d.Date != nil && !d.Date.IsZero())
	check("weekDay", hasText(d.WeekDay))
	check("hourSlot", hasText(d.HourSlot))
	check("subtotal", d.Subtotal != nil)
	check("discount", d.Discount != nil)
	check("total", d.Total != nil)
	check("paymentMethod", hasText(d.PaymentMethod))
	check("origin", hasText(d.Origin))
	check("itemsDenormalized", d.Items != nil)
	check("totalItemsCount", d.TotalItemsCount != nil)
	check("timeToStartPreparing", d.TimeToStartPreparing != nil)
	check("timePreparing", d.TimePreparing != nil)
	check("orderType", hasText(d.OrderType))
	check("waiterId", hasText(d.WaiterID))
	check("waiterName", hasText(d.WaiterName))
	check("isCanceled", d.IsCanceled != nil)
	return missing
}

func missingItemFields(items []DraftItem) []string {
	var missing []string
	for i, it := range items {
		check := func(field string, present bool) {
			if !present {
				missing = append(missing, fmt.Sprintf("itemsDenormalized[%d].%s", i, field))
			}
		}
		check("itemId", hasText(it.ItemID))
		check("itemName", hasText(it.ItemName))
		check("category", hasText(it.Category))
		check("quantity", it.Quantity != nil)
		check("unitPrice", it.UnitPrice != nil)
		check("totalPrice", it.TotalPrice != nil)
	}
	return missing
}

func missingDeliveryFields(d Draft) []string {
	var missing []string
	if d.DeliveryFee == nil {
		missing = append(missing, "deliveryFee")
	}
	if d.TimeToDelivery == nil {
		missing = append(missing, "timeToDelivery")
	}
	if !hasText(d.DeliveryNeighborhood) {
		missing = append(missing, "deliveryNeighborhood")
	}
	return missing
}

func missingError(prefix string, fields []string) *ValidationError {
	return &ValidationError{
		Message: prefix + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func copyDecimal(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := *v
	return &d
}

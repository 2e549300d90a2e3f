package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
	"github.com/jhoicas/BarApp-api/internal/domain/repository"
)

var _ repository.BusinessStore = (*BusinessRepo)(nil)

// businessColumns nombre del campo consultable -> columna. Solo estas columnas llegan al SQL.
var businessColumns = map[string]string{
	"date":                   "date",
	"weekDay":                "week_day",
	"hourSlot":               "hour_slot",
	"discount":               "discount",
	"deliveryFee":            "delivery_fee",
	"customerCount":          "customer_count",
	"paymentMethod":          "payment_method",
	"origin":                 "origin",
	"totalItemsCount":        "total_items_count",
	"timeToStartPreparing":   "time_to_start_preparing",
	"timePreparing":          "time_preparing",
	"timeToDelivery":         "time_to_delivery",
	"waiterId":               "waiter_id",
	"waiterName":             "waiter_name",
	"transactionHandlerId":   "transaction_handler_id",
	"transactionHandlerName": "transaction_handler_name",
	"deliveryNeighborhood":   "delivery_neighborhood",
	"isCanceled":             "is_canceled",
	"cancellationReason":     "cancellation_reason",
}

const businessSelect = `
	SELECT id, restaurant_id, original_order_id, date, week_day, hour_slot,
	       subtotal, discount, delivery_fee, total, customer_count, payment_method, origin,
	       items, total_items_count, time_to_start_preparing, time_preparing, order_type,
	       time_to_delivery, waiter_id, waiter_name, transaction_handler_id, transaction_handler_name,
	       delivery_neighborhood, is_canceled, cancellation_reason, created_at
	FROM business_records`

// itemJSON forma de cada ítem dentro de la columna JSONB items.
type itemJSON struct {
	ItemID     string          `json:"itemId"`
	ItemName   string          `json:"itemName"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// BusinessRepo registros de negocio sobre PostgreSQL (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create inserta el registro; la restricción única (restaurant_id, original_order_id) lo hace write-once.
func (r *BusinessRepo) Create(ctx context.Context, rec *entity.BusinessRecord) error {
	items := make([]itemJSON, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, itemJSON{
			ItemID: it.ItemID, ItemName: it.ItemName, Category: string(it.Category),
			Quantity: it.Quantity, UnitPrice: it.UnitPrice, TotalPrice: it.TotalPrice,
		})
	}
	itemsRaw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("business.Create items: %w", err)
	}

	const query = `
	INSERT INTO business_records (
	    id, restaurant_id, original_order_id, date, week_day, hour_slot,
	    subtotal, discount, delivery_fee, total, customer_count, payment_method, origin,
	    items, total_items_count, time_to_start_preparing, time_preparing, order_type,
	    time_to_delivery, waiter_id, waiter_name, transaction_handler_id, transaction_handler_name,
	    delivery_neighborhood, is_canceled, cancellation_reason, created_at
	) VALUES (
	    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	    $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
	)`
	_, err = r.q.Exec(ctx, query,
		rec.ID, rec.RestaurantID, rec.OriginalOrderID, rec.Date, string(rec.WeekDay), rec.HourSlot,
		rec.Subtotal, rec.Discount, rec.DeliveryFee, rec.Total, rec.CustomerCount,
		string(rec.PaymentMethod), string(rec.Origin),
		itemsRaw, rec.TotalItemsCount, rec.TimeToStartPreparing, rec.TimePreparing, string(rec.OrderType),
		rec.TimeToDelivery, rec.WaiterID, rec.WaiterName,
		nullString(rec.TransactionHandlerID), nullString(rec.TransactionHandlerName),
		nullString(rec.DeliveryNeighborhood), rec.IsCanceled, nullString(rec.CancellationReason),
		rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("business.Create: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe en el restaurante.
func (r *BusinessRepo) GetByID(ctx context.Context, restaurantID, id string) (*entity.BusinessRecord, error) {
	row := r.q.QueryRow(ctx, businessSelect+` WHERE restaurant_id = $1 AND id::TEXT = $2`, restaurantID, id)
	rec, err := scanBusiness(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("business.GetByID: %w", err)
	}
	return rec, nil
}

// GetByOrderID devuelve (nil, nil) si el pedido aún no tiene registro.
func (r *BusinessRepo) GetByOrderID(ctx context.Context, restaurantID, orderID string) (*entity.BusinessRecord, error) {
	row := r.q.QueryRow(ctx, businessSelect+` WHERE restaurant_id = $1 AND original_order_id = $2`, restaurantID, orderID)
	rec, err := scanBusiness(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("business.GetByOrderID: %w", err)
	}
	return rec, nil
}

// FindByFilter traduce el filtro a BETWEEN o = sobre la columna del catálogo.
func (r *BusinessRepo) FindByFilter(ctx context.Context, restaurantID string, f business.Filter) ([]*entity.BusinessRecord, error) {
	column, ok := businessColumns[f.Field.Key]
	if !ok {
		return nil, fmt.Errorf("business.FindByFilter: campo no soportado %q", f.Field.Key)
	}

	var (
		query string
		args  = []any{restaurantID, f.Lower}
	)
	switch f.Comparator {
	case business.Equals:
		query = fmt.Sprintf("%s WHERE restaurant_id = $1 AND %s = $2 ORDER BY date", businessSelect, column)
	default:
		query = fmt.Sprintf("%s WHERE restaurant_id = $1 AND %s BETWEEN $2 AND $3 ORDER BY date", businessSelect, column)
		args = append(args, f.Upper)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("business.FindByFilter: %w", err)
	}
	defer rows.Close()

	out := []*entity.BusinessRecord{}
	for rows.Next() {
		rec, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("business.FindByFilter scan: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetTotals usa COALESCE para devolver cero si no hay filas en el rango.
func (r *BusinessRepo) GetTotals(ctx context.Context, restaurantID string, start, end time.Time) (entity.DailyTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total),        0) AS revenue,
	    COUNT(*)                       AS orders,
	    COALESCE(SUM(discount),     0) AS discount,
	    COALESCE(SUM(delivery_fee), 0) AS delivery_fee
	FROM business_records
	WHERE restaurant_id = $1
	  AND date BETWEEN $2 AND $3`

	var t entity.DailyTotals
	err := r.q.QueryRow(ctx, query, restaurantID, start, end).
		Scan(&t.Revenue, &t.Orders, &t.Discount, &t.DeliveryFee)
	if err != nil {
		return entity.DailyTotals{}, fmt.Errorf("business.GetTotals: %w", err)
	}
	return t, nil
}

// GetSalesByWaiter agrupa por waiter_id; el nombre es el del primer registro insertado.
func (r *BusinessRepo) GetSalesByWaiter(ctx context.Context, restaurantID string) ([]entity.SalesGroup, error) {
	const query = `
	SELECT
	    waiter_id,
	    (ARRAY_AGG(waiter_name ORDER BY created_at))[1] AS waiter_name,
	    SUM(total)                                      AS revenue,
	    COUNT(*)                                        AS orders
	FROM business_records
	WHERE restaurant_id = $1
	GROUP BY waiter_id
	ORDER BY revenue DESC, waiter_id`

	return r.salesGroups(ctx, "business.GetSalesByWaiter", query, restaurantID)
}

// GetSalesByOrigin agrupa por canal de origen, opcionalmente acotado por fecha.
func (r *BusinessRepo) GetSalesByOrigin(ctx context.Context, restaurantID string, start, end time.Time) ([]entity.SalesGroup, error) {
	scope, args := dateScope("date", restaurantID, start, end)
	query := `
	SELECT origin, origin, SUM(total) AS revenue, COUNT(*) AS orders
	FROM business_records
	WHERE restaurant_id = $1` + scope + `
	GROUP BY origin
	ORDER BY revenue DESC, origin`

	return r.salesGroups(ctx, "business.GetSalesByOrigin", query, args...)
}

// GetTopItems expande la columna JSONB items y suma unidades por itemId.
func (r *BusinessRepo) GetTopItems(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]entity.ItemSales, error) {
	scope, args := dateScope("b.date", restaurantID, start, end)
	args = append(args, limit)
	query := fmt.Sprintf(`
	SELECT
	    it->>'itemId'                                           AS item_id,
	    (ARRAY_AGG(it->>'itemName' ORDER BY b.created_at))[1]   AS item_name,
	    (ARRAY_AGG(it->>'category' ORDER BY b.created_at))[1]   AS category,
	    SUM((it->>'quantity')::INT)                             AS units
	FROM business_records b
	CROSS JOIN LATERAL jsonb_array_elements(b.items) AS it
	WHERE b.restaurant_id = $1%s
	GROUP BY it->>'itemId'
	ORDER BY units DESC, item_id
	LIMIT $%d`, scope, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("business.GetTopItems: %w", err)
	}
	defer rows.Close()

	var out []entity.ItemSales
	for rows.Next() {
		var (
			it       entity.ItemSales
			category string
		)
		if err := rows.Scan(&it.ItemID, &it.ItemName, &category, &it.UnitsSold); err != nil {
			return nil, fmt.Errorf("business.GetTopItems scan: %w", err)
		}
		it.Category = entity.ItemCategory(category)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *BusinessRepo) salesGroups(ctx context.Context, op, query string, args ...any) ([]entity.SalesGroup, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []entity.SalesGroup
	for rows.Next() {
		var g entity.SalesGroup
		if err := rows.Scan(&g.Key, &g.Label, &g.Revenue, &g.Orders); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// dateScope agrega "AND col BETWEEN $2 AND $3" cuando el rango no es cero.
func dateScope(column, restaurantID string, start, end time.Time) (string, []any) {
	args := []any{restaurantID}
	if start.IsZero() && end.IsZero() {
		return "", args
	}
	args = append(args, start, end)
	return fmt.Sprintf(" AND %s BETWEEN $2 AND $3", column), args
}

func scanBusiness(row pgx.Row) (*entity.BusinessRecord, error) {
	var (
		rec                                           entity.BusinessRecord
		weekDay, payment, origin, orderType           string
		itemsRaw                                      []byte
		handlerID, handlerName, neighborhood, reason *string
	)
	err := row.Scan(
		&rec.ID, &rec.RestaurantID, &rec.OriginalOrderID, &rec.Date, &weekDay, &rec.HourSlot,
		&rec.Subtotal, &rec.Discount, &rec.DeliveryFee, &rec.Total, &rec.CustomerCount, &payment, &origin,
		&itemsRaw, &rec.TotalItemsCount, &rec.TimeToStartPreparing, &rec.TimePreparing, &orderType,
		&rec.TimeToDelivery, &rec.WaiterID, &rec.WaiterName, &handlerID, &handlerName,
		&neighborhood, &rec.IsCanceled, &reason, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	var items []itemJSON
	if err := json.Unmarshal(itemsRaw, &items); err != nil {
		return nil, fmt.Errorf("items JSONB: %w", err)
	}
	rec.Items = make([]entity.BusinessItem, 0, len(items))
	for _, it := range items {
		rec.Items = append(rec.Items, entity.BusinessItem{
			ItemID: it.ItemID, ItemName: it.ItemName, Category: entity.ItemCategory(it.Category),
			Quantity: it.Quantity, UnitPrice: it.UnitPrice, TotalPrice: it.TotalPrice,
		})
	}

	rec.WeekDay = entity.WeekDay(weekDay)
	rec.PaymentMethod = entity.PaymentMethod(payment)
	rec.Origin = entity.Origin(origin)
	rec.OrderType = entity.OrderType(orderType)
	rec.TransactionHandlerID = derefString(handlerID)
	rec.TransactionHandlerName = derefString(handlerName)
	rec.DeliveryNeighborhood = derefString(neighborhood)
	rec.CancellationReason = derefString(reason)
	return &rec, nil
}

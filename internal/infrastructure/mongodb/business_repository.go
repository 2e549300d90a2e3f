package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
	"github.com/jhoicas/BarApp-api/internal/domain/repository"
)

const businessCollection = "business"

var _ repository.BusinessStore = (*BusinessRepo)(nil)

// businessDoc documento de la colección business. Las claves BSON coinciden con
// business.QueryField.Key, así FindByFilter no necesita tabla de columnas.
type businessDoc struct {
	ID                     string                `bson:"_id"`
	RestaurantID           string                `bson:"restaurantId"`
	OriginalOrderID        string                `bson:"originalOrderId"`
	Date                   time.Time             `bson:"date"`
	WeekDay                string                `bson:"weekDay"`
	HourSlot               string                `bson:"hourSlot"`
	Subtotal               primitive.Decimal128  `bson:"subtotal"`
	Discount               primitive.Decimal128  `bson:"discount"`
	DeliveryFee            *primitive.Decimal128 `bson:"deliveryFee,omitempty"`
	Total                  primitive.Decimal128  `bson:"total"`
	CustomerCount          *int                  `bson:"customerCount,omitempty"`
	PaymentMethod          string                `bson:"paymentMethod"`
	Origin                 string                `bson:"origin"`
	Items                  []itemDoc             `bson:"itemsDenormalized"`
	TotalItemsCount        int                   `bson:"totalItemsCount"`
	TimeToStartPreparing   int                   `bson:"timeToStartPreparing"`
	TimePreparing          int                   `bson:"timePreparing"`
	OrderType              string                `bson:"orderType"`
	TimeToDelivery         *int                  `bson:"timeToDelivery,omitempty"`
	WaiterID               string                `bson:"waiterId"`
	WaiterName             string                `bson:"waiterName"`
	TransactionHandlerID   string                `bson:"transactionHandlerId,omitempty"`
	TransactionHandlerName string                `bson:"transactionHandlerName,omitempty"`
	DeliveryNeighborhood   string                `bson:"deliveryNeighborhood,omitempty"`
	IsCanceled             bool                  `bson:"isCanceled"`
	CancellationReason     string                `bson:"cancellationReason,omitempty"`
	CreatedAt              time.Time             `bson:"createdAt"`
}

type itemDoc struct {
	ItemID     string               `bson:"itemId"`
	ItemName   string               `bson:"itemName"`
	Category   string               `bson:"category"`
	Quantity   int                  `bson:"quantity"`
	UnitPrice  primitive.Decimal128 `bson:"unitPrice"`
	TotalPrice primitive.Decimal128 `bson:"totalPrice"`
}

// BusinessRepo registros de negocio sobre una colección MongoDB.
type BusinessRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewBusinessRepository construye el repositorio sobre la conexión.
func NewBusinessRepository(conn *Connection) *BusinessRepo {
	return &BusinessRepo{
		collection: conn.Database.Collection(businessCollection),
		timeout:    conn.timeout,
	}
}

// EnsureIndexes crea los índices; el único (restaurantId, originalOrderId) garantiza un registro por pedido.
func (r *BusinessRepo) EnsureIndexes(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "restaurantId", Value: 1}, {Key: "originalOrderId", Value: 1}},
			Options: options.Index().SetName("restaurant_order_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "restaurantId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("restaurant_date"),
		},
		{
			Keys:    bson.D{{Key: "restaurantId", Value: 1}, {Key: "waiterId", Value: 1}},
			Options: options.Index().SetName("restaurant_waiter"),
		},
		{
			Keys:    bson.D{{Key: "restaurantId", Value: 1}, {Key: "origin", Value: 1}},
			Options: options.Index().SetName("restaurant_origin"),
		},
	}
	names, err := r.collection.Indexes().CreateMany(ctx, models)
	if err != nil {
		return nil, fmt.Errorf("business.EnsureIndexes: %w", err)
	}
	return names, nil
}

func (r *BusinessRepo) Create(ctx context.Context, rec *entity.BusinessRecord) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	doc, err := toDocument(rec)
	if err != nil {
		return fmt.Errorf("business.Create: %w", err)
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("business.Create: %w", err)
	}
	return nil
}

func (r *BusinessRepo) GetByID(ctx context.Context, restaurantID, id string) (*entity.BusinessRecord, error) {
	return r.findOne(ctx, "business.GetByID", bson.M{"restaurantId": restaurantID, "_id": id})
}

func (r *BusinessRepo) GetByOrderID(ctx context.Context, restaurantID, orderID string) (*entity.BusinessRecord, error) {
	return r.findOne(ctx, "business.GetByOrderID", bson.M{"restaurantId": restaurantID, "originalOrderId": orderID})
}

// FindByFilter usa {campo: valor} para igualdad y {$gte, $lte} para rangos.
// Un campo opcional ausente en el documento no coincide con ninguno de los dos.
func (r *BusinessRepo) FindByFilter(ctx context.Context, restaurantID string, f business.Filter) ([]*entity.BusinessRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	lower, err := bsonValue(f.Lower)
	if err != nil {
		return nil, fmt.Errorf("business.FindByFilter: %w", err)
	}
	query := bson.M{"restaurantId": restaurantID}
	if f.Comparator == business.Equals {
		query[f.Field.Key] = lower
	} else {
		upper, err := bsonValue(f.Upper)
		if err != nil {
			return nil, fmt.Errorf("business.FindByFilter: %w", err)
		}
		query[f.Field.Key] = bson.M{"$gte": lower, "$lte": upper}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("business.FindByFilter: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*entity.BusinessRecord{}
	for cursor.Next(ctx) {
		var doc businessDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("business.FindByFilter decode: %w", err)
		}
		rec, err := fromDocument(&doc)
		if err != nil {
			return nil, fmt.Errorf("business.FindByFilter: %w", err)
		}
		out = append(out, rec)
	}
	return out, cursor.Err()
}

func (r *BusinessRepo) GetTotals(ctx context.Context, restaurantID string, start, end time.Time) (entity.DailyTotals, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: matchStage(restaurantID, start, end)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "revenue", Value: bson.M{"$sum": "$total"}},
			{Key: "orders", Value: bson.M{"$sum": 1}},
			{Key: "discount", Value: bson.M{"$sum": "$discount"}},
			{Key: "deliveryFee", Value: bson.M{"$sum": "$deliveryFee"}},
		}}},
	}
	var rows []struct {
		Revenue     bson.RawValue `bson:"revenue"`
		Orders      int           `bson:"orders"`
		Discount    bson.RawValue `bson:"discount"`
		DeliveryFee bson.RawValue `bson:"deliveryFee"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return entity.DailyTotals{}, fmt.Errorf("business.GetTotals: %w", err)
	}
	if len(rows) == 0 {
		return entity.DailyTotals{Revenue: decimal.Zero, Discount: decimal.Zero, DeliveryFee: decimal.Zero}, nil
	}
	row := rows[0]
	t := entity.DailyTotals{Orders: row.Orders}
	var err error
	if t.Revenue, err = decimalFromRaw(row.Revenue); err != nil {
		return entity.DailyTotals{}, fmt.Errorf("business.GetTotals revenue: %w", err)
	}
	if t.Discount, err = decimalFromRaw(row.Discount); err != nil {
		return entity.DailyTotals{}, fmt.Errorf("business.GetTotals discount: %w", err)
	}
	if t.DeliveryFee, err = decimalFromRaw(row.DeliveryFee); err != nil {
		return entity.DailyTotals{}, fmt.Errorf("business.GetTotals deliveryFee: %w", err)
	}
	return t, nil
}

func (r *BusinessRepo) GetSalesByWaiter(ctx context.Context, restaurantID string) ([]entity.SalesGroup, error) {
	groups, err := r.salesGroups(ctx, matchStage(restaurantID, time.Time{}, time.Time{}), "$waiterId", "$waiterName")
	if err != nil {
		return nil, fmt.Errorf("business.GetSalesByWaiter: %w", err)
	}
	return groups, nil
}

func (r *BusinessRepo) GetSalesByOrigin(ctx context.Context, restaurantID string, start, end time.Time) ([]entity.SalesGroup, error) {
	groups, err := r.salesGroups(ctx, matchStage(restaurantID, start, end), "$origin", "$origin")
	if err != nil {
		return nil, fmt.Errorf("business.GetSalesByOrigin: %w", err)
	}
	return groups, nil
}

// GetTopItems $unwind de los ítems y suma de cantidades por itemId.
func (r *BusinessRepo) GetTopItems(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]entity.ItemSales, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: matchStage(restaurantID, start, end)}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}},
		{{Key: "$unwind", Value: "$itemsDenormalized"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$itemsDenormalized.itemId"},
			{Key: "itemName", Value: bson.M{"$first": "$itemsDenormalized.itemName"}},
			{Key: "category", Value: bson.M{"$first": "$itemsDenormalized.category"}},
			{Key: "units", Value: bson.M{"$sum": "$itemsDenormalized.quantity"}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "units", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
	var rows []struct {
		ItemID   string `bson:"_id"`
		ItemName string `bson:"itemName"`
		Category string `bson:"category"`
		Units    int    `bson:"units"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, fmt.Errorf("business.GetTopItems: %w", err)
	}
	out := make([]entity.ItemSales, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.ItemSales{
			ItemID:    row.ItemID,
			ItemName:  row.ItemName,
			Category:  entity.ItemCategory(row.Category),
			UnitsSold: row.Units,
		})
	}
	return out, nil
}

// salesGroups agrupa por key tomando label del primer registro insertado.
func (r *BusinessRepo) salesGroups(ctx context.Context, match bson.M, key, label string) ([]entity.SalesGroup, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: key},
			{Key: "label", Value: bson.M{"$first": label}},
			{Key: "revenue", Value: bson.M{"$sum": "$total"}},
			{Key: "orders", Value: bson.M{"$sum": 1}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "revenue", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	var rows []struct {
		Key     string        `bson:"_id"`
		Label   string        `bson:"label"`
		Revenue bson.RawValue `bson:"revenue"`
		Orders  int           `bson:"orders"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	out := make([]entity.SalesGroup, 0, len(rows))
	for _, row := range rows {
		revenue, err := decimalFromRaw(row.Revenue)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.SalesGroup{Key: row.Key, Label: row.Label, Revenue: revenue, Orders: row.Orders})
	}
	return out, nil
}

func (r *BusinessRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (r *BusinessRepo) findOne(ctx context.Context, op string, filter bson.M) (*entity.BusinessRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc businessDoc
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rec, err := fromDocument(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rec, nil
}

func (r *BusinessRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// matchStage filtro por restaurante y, si start/end no son cero, por fecha.
func matchStage(restaurantID string, start, end time.Time) bson.M {
	match := bson.M{"restaurantId": restaurantID}
	if !start.IsZero() || !end.IsZero() {
		match["date"] = bson.M{"$gte": start, "$lte": end}
	}
	return match
}

// bsonValue adapta los límites del filtro a tipos BSON comparables.
func bsonValue(v any) (any, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return toDecimal128(val)
	case time.Time:
		return val.UTC(), nil
	default:
		return v, nil
	}
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	out, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("decimal %s: %w", d.String(), err)
	}
	return out, nil
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(d.String())
}

// decimalFromRaw lee el resultado de $sum: Decimal128 si hubo montos, entero si no hubo ninguno.
func decimalFromRaw(v bson.RawValue) (decimal.Decimal, error) {
	switch v.Type {
	case bsontype.Decimal128:
		return fromDecimal128(v.Decimal128())
	case bsontype.Int32:
		return decimal.NewFromInt32(v.Int32()), nil
	case bsontype.Int64:
		return decimal.NewFromInt(v.Int64()), nil
	case bsontype.Double:
		return decimal.NewFromFloat(v.Double()), nil
	case bsontype.Null, bsontype.Undefined, 0:
		return decimal.Zero, nil
	}
	return decimal.Zero, fmt.Errorf("tipo BSON inesperado %s", v.Type)
}

func toDocument(rec *entity.BusinessRecord) (*businessDoc, error) {
	var err error
	doc := &businessDoc{
		ID:                     rec.ID,
		RestaurantID:           rec.RestaurantID,
		OriginalOrderID:        rec.OriginalOrderID,
		Date:                   rec.Date.UTC(),
		WeekDay:                string(rec.WeekDay),
		HourSlot:               rec.HourSlot,
		CustomerCount:          rec.CustomerCount,
		PaymentMethod:          string(rec.PaymentMethod),
		Origin:                 string(rec.Origin),
		TotalItemsCount:        rec.TotalItemsCount,
		TimeToStartPreparing:   rec.TimeToStartPreparing,
		TimePreparing:          rec.TimePreparing,
		OrderType:              string(rec.OrderType),
		TimeToDelivery:         rec.TimeToDelivery,
		WaiterID:               rec.WaiterID,
		WaiterName:             rec.WaiterName,
		TransactionHandlerID:   rec.TransactionHandlerID,
		TransactionHandlerName: rec.TransactionHandlerName,
		DeliveryNeighborhood:   rec.DeliveryNeighborhood,
		IsCanceled:             rec.IsCanceled,
		CancellationReason:     rec.CancellationReason,
		CreatedAt:              rec.CreatedAt.UTC(),
	}
	if doc.Subtotal, err = toDecimal128(rec.Subtotal); err != nil {
		return nil, err
	}
	if doc.Discount, err = toDecimal128(rec.Discount); err != nil {
		return nil, err
	}
	if doc.Total, err = toDecimal128(rec.Total); err != nil {
		return nil, err
	}
	if rec.DeliveryFee != nil {
		fee, err := toDecimal128(*rec.DeliveryFee)
		if err != nil {
			return nil, err
		}
		doc.DeliveryFee = &fee
	}
	doc.Items = make([]itemDoc, 0, len(rec.Items))
	for _, it := range rec.Items {
		unit, err := toDecimal128(it.UnitPrice)
		if err != nil {
			return nil, err
		}
		total, err := toDecimal128(it.TotalPrice)
		if err != nil {
			return nil, err
		}
		doc.Items = append(doc.Items, itemDoc{
			ItemID: it.ItemID, ItemName: it.ItemName, Category: string(it.Category),
			Quantity: it.Quantity, UnitPrice: unit, TotalPrice: total,
		})
	}
	return doc, nil
}

func fromDocument(doc *businessDoc) (*entity.BusinessRecord, error) {
	var err error
	rec := &entity.BusinessRecord{
		ID:                     doc.ID,
		RestaurantID:           doc.RestaurantID,
		OriginalOrderID:        doc.OriginalOrderID,
		Date:                   doc.Date,
		WeekDay:                entity.WeekDay(doc.WeekDay),
		HourSlot:               doc.HourSlot,
		CustomerCount:          doc.CustomerCount,
		PaymentMethod:          entity.PaymentMethod(doc.PaymentMethod),
		Origin:                 entity.Origin(doc.Origin),
		TotalItemsCount:        doc.TotalItemsCount,
		TimeToStartPreparing:   doc.TimeToStartPreparing,
		TimePreparing:          doc.TimePreparing,
		OrderType:              entity.OrderType(doc.OrderType),
		TimeToDelivery:         doc.TimeToDelivery,
		WaiterID:               doc.WaiterID,
		WaiterName:             doc.WaiterName,
		TransactionHandlerID:   doc.TransactionHandlerID,
		TransactionHandlerName: doc.TransactionHandlerName,
		DeliveryNeighborhood:   doc.DeliveryNeighborhood,
		IsCanceled:             doc.IsCanceled,
		CancellationReason:     doc.CancellationReason,
		CreatedAt:              doc.CreatedAt,
	}
	if rec.Subtotal, err = fromDecimal128(doc.Subtotal); err != nil {
		return nil, err
	}
	if rec.Discount, err = fromDecimal128(doc.Discount); err != nil {
		return nil, err
	}
	if rec.Total, err = fromDecimal128(doc.Total); err != nil {
		return nil, err
	}
	if doc.DeliveryFee != nil {
		fee, err := fromDecimal128(*doc.DeliveryFee)
		if err != nil {
			return nil, err
		}
		rec.DeliveryFee = &fee
	}
	rec.Items = make([]entity.BusinessItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		unit, err := fromDecimal128(it.UnitPrice)
		if err != nil {
			return nil, err
		}
		total, err := fromDecimal128(it.TotalPrice)
		if err != nil {
			return nil, err
		}
		rec.Items = append(rec.Items, entity.BusinessItem{
			ItemID: it.ItemID, ItemName: it.ItemName, Category: entity.ItemCategory(it.Category),
			Quantity: it.Quantity, UnitPrice: unit, TotalPrice: total,
		})
	}
	return rec, nil
}

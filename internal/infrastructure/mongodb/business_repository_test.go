package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

func rawValue(t *testing.T, v any) bson.RawValue {
	t.Helper()
	b, err := bson.Marshal(bson.M{"v": v})
	require.NoError(t, err)
	return bson.Raw(b).Lookup("v")
}

func TestDecimalFromRaw(t *testing.T) {
	d128, err := primitive.ParseDecimal128("1234.50")
	require.NoError(t, err)

	cases := map[string]struct {
		in   any
		want string
	}{
		"decimal128": {d128, "1234.5"},
		"int32 cero": {int32(0), "0"},
		"int64":      {int64(42), "42"},
		"double":     {2.5, "2.5"},
		"null":       {nil, "0"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := decimalFromRaw(rawValue(t, tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	_, err = decimalFromRaw(rawValue(t, "texto"))
	assert.Error(t, err)
}

func TestBsonValue(t *testing.T) {
	v, err := bsonValue(decimal.RequireFromString("9.90"))
	require.NoError(t, err)
	assert.IsType(t, primitive.Decimal128{}, v)

	loc := time.FixedZone("BRT", -3*3600)
	v, err = bsonValue(time.Date(2026, 10, 16, 21, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, v.(time.Time).Location())

	v, err = bsonValue(3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestMatchStage(t *testing.T) {
	assert.Equal(t, bson.M{"restaurantId": "r1"}, matchStage("r1", time.Time{}, time.Time{}))

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := business.EndOfDay(start)
	m := matchStage("r1", start, end)
	assert.Equal(t, bson.M{"$gte": start, "$lte": end}, m["date"])
}

func TestDocument_ConservaOpcionalesYMontos(t *testing.T) {
	fee := decimal.RequireFromString("6.00")
	minutes := 35
	rec := &entity.BusinessRecord{
		ID:              "b-1",
		RestaurantID:    "r1",
		OriginalOrderID: "ord-1",
		Date:            time.Date(2026, 10, 16, 21, 0, 0, 0, time.UTC),
		WeekDay:         entity.WeekDayFriday,
		Subtotal:        decimal.RequireFromString("80.10"),
		Discount:        decimal.Zero,
		DeliveryFee:     &fee,
		Total:           decimal.RequireFromString("86.10"),
		OrderType:       entity.OrderTypeDelivery,
		TimeToDelivery:  &minutes,
		Items: []entity.BusinessItem{{
			ItemID: "A", ItemName: "Moqueca", Category: entity.CategoryMainCourse, Quantity: 1,
			UnitPrice: decimal.RequireFromString("80.10"), TotalPrice: decimal.RequireFromString("80.10"),
		}},
		DeliveryNeighborhood: "Centro",
	}

	doc, err := toDocument(rec)
	require.NoError(t, err)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	_, err = bson.Raw(raw).LookupErr("customerCount")
	assert.Error(t, err, "un opcional ausente no se escribe")
	assert.Equal(t, "b-1", bson.Raw(raw).Lookup("_id").StringValue())

	var decoded businessDoc
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	back, err := fromDocument(&decoded)
	require.NoError(t, err)

	assert.True(t, back.Total.Equal(rec.Total))
	require.NotNil(t, back.DeliveryFee)
	assert.True(t, back.DeliveryFee.Equal(fee))
	assert.Nil(t, back.CustomerCount)
	assert.Equal(t, 35, *back.TimeToDelivery)
	require.Len(t, back.Items, 1)
	assert.Equal(t, entity.CategoryMainCourse, back.Items[0].Category)
	assert.True(t, back.Date.Equal(rec.Date))
}

package business

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

func record(waiterID, waiterName string, total int64, origin entity.Origin, items ...entity.BusinessItem) *entity.BusinessRecord {
	return &entity.BusinessRecord{
		WaiterID:   waiterID,
		WaiterName: waiterName,
		Total:      decimal.NewFromInt(total),
		Discount:   decimal.Zero,
		Origin:     origin,
		Items:      items,
		Date:       time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC),
	}
}

func item(id string, qty int) entity.BusinessItem {
	return entity.BusinessItem{ItemID: id, ItemName: "item " + id, Category: entity.CategoryDrink, Quantity: qty}
}

func TestRankItems_SumsUnitsAcrossRecords(t *testing.T) {
	records := []*entity.BusinessRecord{
		record("w1", "Ana", 10, entity.OriginInHouse, item("A", 2), item("B", 1)),
		record("w1", "Ana", 10, entity.OriginInHouse, item("A", 3), item("C", 8)),
	}

	top := RankItems(records, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "C", top[0].ItemID)
	assert.Equal(t, 8, top[0].UnitsSold)
	assert.Equal(t, "A", top[1].ItemID)
	assert.Equal(t, 5, top[1].UnitsSold)
}

func TestRankItems_TiesBrokenByItemID(t *testing.T) {
	records := []*entity.BusinessRecord{
		record("w1", "Ana", 10, entity.OriginInHouse, item("Z", 2), item("M", 2), item("B", 1)),
	}
	top := RankItems(records, 0)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"M", "Z", "B"}, []string{top[0].ItemID, top[1].ItemID, top[2].ItemID})
}

func TestGroupSales_ByWaiter(t *testing.T) {
	records := []*entity.BusinessRecord{
		record("W1", "Ana", 100, entity.OriginInHouse),
		record("W2", "Beto", 30, entity.OriginPhone),
		record("W1", "Ana María", 50, entity.OriginInHouse),
	}

	groups := GroupSales(records, ByWaiter)
	require.Len(t, groups, 2)

	assert.Equal(t, "W1", groups[0].Key)
	assert.Equal(t, "Ana", groups[0].Label, "se conserva la primera etiqueta vista")
	assert.True(t, groups[0].Revenue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, groups[0].Orders)
	assert.Equal(t, "75", AverageTicket(groups[0].Revenue, groups[0].Orders).String())

	assert.Equal(t, "W2", groups[1].Key)
	assert.Equal(t, 1, groups[1].Orders)
	assert.Equal(t, "30", AverageTicket(groups[1].Revenue, groups[1].Orders).String())
}

func TestGroupSales_ByOriginTieOrder(t *testing.T) {
	records := []*entity.BusinessRecord{
		record("W1", "Ana", 40, entity.OriginWhatsApp),
		record("W1", "Ana", 40, entity.OriginDeliveryApp),
	}
	groups := GroupSales(records, ByOrigin)
	require.Len(t, groups, 2)
	assert.Equal(t, string(entity.OriginDeliveryApp), groups[0].Key)
	assert.Equal(t, string(entity.OriginWhatsApp), groups[1].Key)
}

func TestSumTotals(t *testing.T) {
	assert.Equal(t, 0, SumTotals(nil).Orders)
	assert.True(t, SumTotals(nil).Revenue.IsZero())

	fee := decimal.RequireFromString("7.50")
	withFee := record("W1", "Ana", 60, entity.OriginPhone)
	withFee.DeliveryFee = &fee
	withFee.Discount = decimal.NewFromInt(5)

	totals := SumTotals([]*entity.BusinessRecord{withFee, record("W2", "Beto", 40, entity.OriginInHouse)})
	assert.Equal(t, 2, totals.Orders)
	assert.True(t, totals.Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.Discount.Equal(decimal.NewFromInt(5)))
	assert.True(t, totals.DeliveryFee.Equal(fee))
}

func TestInDateRange_Inclusive(t *testing.T) {
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	atStart := record("W1", "Ana", 1, entity.OriginInHouse)
	atStart.Date = day
	atEnd := record("W1", "Ana", 1, entity.OriginInHouse)
	atEnd.Date = EndOfDay(day)
	after := record("W1", "Ana", 1, entity.OriginInHouse)
	after.Date = day.Add(24 * time.Hour)

	got := InDateRange([]*entity.BusinessRecord{atStart, atEnd, after}, StartOfDay(day), EndOfDay(day))
	assert.Len(t, got, 2)
}

func TestAverageTicket(t *testing.T) {
	assert.True(t, AverageTicket(decimal.Zero, 0).IsZero())
	assert.Equal(t, "33.33", AverageTicket(decimal.NewFromInt(100), 3).String())
}

func TestNormalizeTopLimit(t *testing.T) {
	assert.Equal(t, DefaultTopItems, NormalizeTopLimit(0))
	assert.Equal(t, DefaultTopItems, NormalizeTopLimit(-4))
	assert.Equal(t, 25, NormalizeTopLimit(25))
	assert.Equal(t, MaxTopItems, NormalizeTopLimit(1000))
}

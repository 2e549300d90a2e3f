package business

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

// Límites del ranking de ítems.
const (
	DefaultTopItems = 10
	MaxTopItems     = 100
)

// InDateRange filtra los registros con fecha en [start, end].
func InDateRange(records []*entity.BusinessRecord, start, end time.Time) []*entity.BusinessRecord {
	out := make([]*entity.BusinessRecord, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out
}

// SumTotals suma ingresos, descuentos y domicilios y cuenta pedidos.
func SumTotals(records []*entity.BusinessRecord) entity.DailyTotals {
	t := entity.DailyTotals{Revenue: decimal.Zero, Discount: decimal.Zero, DeliveryFee: decimal.Zero}
	for _, r := range records {
		t.Revenue = t.Revenue.Add(r.Total)
		t.Discount = t.Discount.Add(r.Discount)
		if r.DeliveryFee != nil {
			t.DeliveryFee = t.DeliveryFee.Add(*r.DeliveryFee)
		}
		t.Orders++
	}
	return t
}

// GroupKey extrae la clave del grupo y su etiqueta legible.
type GroupKey func(r *entity.BusinessRecord) (key, label string)

// ByWaiter agrupa por mesero; la etiqueta es el nombre.
func ByWaiter(r *entity.BusinessRecord) (string, string) { return r.WaiterID, r.WaiterName }

// ByOrigin agrupa por canal de origen.
func ByOrigin(r *entity.BusinessRecord) (string, string) {
	return string(r.Origin), string(r.Origin)
}

// GroupSales agrupa ingresos y pedidos por clave conservando la primera etiqueta vista.
// Orden de salida: ingresos descendente, luego clave ascendente.
func GroupSales(records []*entity.BusinessRecord, keyFn GroupKey) []entity.SalesGroup {
	index := make(map[string]int)
	var groups []entity.SalesGroup
	for _, r := range records {
		key, label := keyFn(r)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, entity.SalesGroup{Key: key, Label: label, Revenue: decimal.Zero})
		}
		groups[i].Revenue = groups[i].Revenue.Add(r.Total)
		groups[i].Orders++
	}
	slices.SortStableFunc(groups, func(a, b entity.SalesGroup) int {
		return cmp.Or(b.Revenue.Cmp(a.Revenue), cmp.Compare(a.Key, b.Key))
	})
	return groups
}

// RankItems aplana los ítems de todos los registros, suma unidades por itemId y
// devuelve los limit primeros (unidades descendente, luego itemId ascendente).
func RankItems(records []*entity.BusinessRecord, limit int) []entity.ItemSales {
	limit = NormalizeTopLimit(limit)
	index := make(map[string]int)
	var ranking []entity.ItemSales
	for _, r := range records {
		for _, it := range r.Items {
			i, ok := index[it.ItemID]
			if !ok {
				i = len(ranking)
				index[it.ItemID] = i
				ranking = append(ranking, entity.ItemSales{
					ItemID: it.ItemID, ItemName: it.ItemName, Category: it.Category,
				})
			}
			ranking[i].UnitsSold += it.Quantity
		}
	}
	slices.SortStableFunc(ranking, func(a, b entity.ItemSales) int {
		return cmp.Or(cmp.Compare(b.UnitsSold, a.UnitsSold), cmp.Compare(a.ItemID, b.ItemID))
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// NormalizeTopLimit aplica el valor por defecto (10) y el máximo (100).
func NormalizeTopLimit(limit int) int {
	if limit <= 0 {
		return DefaultTopItems
	}
	if limit > MaxTopItems {
		return MaxTopItems
	}
	return limit
}

// AverageTicket ingresos / pedidos redondeado a 2 decimales; cero si no hay pedidos.
func AverageTicket(revenue decimal.Decimal, orders int) decimal.Decimal {
	if orders == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(orders))).Round(2)
}

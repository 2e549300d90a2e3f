package entity

import "github.com/shopspring/decimal"

// DailyTotals sumatorias crudas de un rango de fechas (sin ticket promedio).
type DailyTotals struct {
	Revenue     decimal.Decimal
	Orders      int
	Discount    decimal.Decimal
	DeliveryFee decimal.Decimal
}

// SalesGroup ingresos y cantidad de pedidos de un grupo (mesero u origen).
// Label es el primer nombre visto dentro del grupo.
type SalesGroup struct {
	Key     string
	Label   string
	Revenue decimal.Decimal
	Orders  int
}

// ItemSales unidades vendidas por ítem; nombre y categoría de la primera aparición.
type ItemSales struct {
	ItemID    string
	ItemName  string
	Category  ItemCategory
	UnitsSold int
}

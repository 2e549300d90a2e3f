package dto

import "github.com/shopspring/decimal"

// DailySummaryDTO respuesta de GET /business/daily-summary.
// Si no hubo pedidos todos los valores son cero.
type DailySummaryDTO struct {
	Date             string          `json:"date"` // YYYY-MM-DD
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalOrders      int             `json:"totalOrders"`
	TotalDiscount    decimal.Decimal `json:"totalDiscount"`
	TotalDeliveryFee decimal.Decimal `json:"totalDeliveryFee"`
	AverageTicket    decimal.Decimal `json:"averageTicket"`
}

// WaiterTicketDTO ticket promedio por mesero.
type WaiterTicketDTO struct {
	WaiterID      string          `json:"waiterId"`
	WaiterName    string          `json:"waiterName"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
}

// OriginSalesDTO ventas por canal de origen.
type OriginSalesDTO struct {
	Origin        string          `json:"origin"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
}

// TopItemDTO ítem del ranking por unidades vendidas.
type TopItemDTO struct {
	ItemID         string `json:"itemId"`
	ItemName       string `json:"itemName"`
	Category       string `json:"category"`
	TotalUnitsSold int    `json:"totalUnitsSold"`
}

// TopItemsRequest parámetros de GET /business/top-selling-items.
type TopItemsRequest struct {
	Limit int `query:"limit"` // default 10, máximo 100
}

// DashboardDTO respuesta de GET /business/dashboard.
type DashboardDTO struct {
	Today     DailySummaryDTO `json:"today"`
	Month     DailySummaryDTO `json:"month"` // Date = primer día del mes
	TopItems  []TopItemDTO    `json:"topItems"`
	DateLabel string          `json:"dateLabel"` // ej: "Octubre 2026"
}

// DailyReportData insumos del PDF de cierre diario.
type DailyReportData struct {
	RestaurantID string
	Summary      DailySummaryDTO
	ByOrigin     []OriginSalesDTO
	TopItems     []TopItemDTO
}

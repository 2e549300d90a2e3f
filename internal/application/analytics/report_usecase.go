// Package analytics contiene los reportes agregados sobre registros de negocio:
// resumen diario, ticket promedio por mesero, ventas por origen, ranking de ítems,
// dashboard y PDF de cierre diario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/BarApp-api/internal/application/dto"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
	"github.com/jhoicas/BarApp-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase reportes restringidos a ADMIN y MANAGER.
//
// Fuente de datos: BusinessReportRepository (consultas read-only).
// Las sumatorias vienen del repositorio; el ticket promedio se calcula aquí.
type ReportUseCase struct {
	repo  repository.BusinessReportRepository
	guard *access.Guard
	loc   *time.Location
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso. loc define el día calendario (hora local del servidor si es nil).
func NewReportUseCase(repo repository.BusinessReportRepository, guard *access.Guard, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{repo: repo, guard: guard, loc: loc, now: time.Now}
}

// DailySummary totales del día indicado (YYYY-MM-DD; vacío = hoy).
// Sin pedidos devuelve el resumen en cero.
func (uc *ReportUseCase) DailySummary(ctx context.Context, p access.Principal, date string) (*dto.DailySummaryDTO, error) {
	if err := uc.guard.Authorize(p, access.ActionReport); err != nil {
		return nil, err
	}
	day, err := uc.parseDay(date)
	if err != nil {
		return nil, err
	}
	return uc.summarize(ctx, p.RestaurantID, day, business.EndOfDay(day))
}

func (uc *ReportUseCase) summarize(ctx context.Context, restaurantID string, start, end time.Time) (*dto.DailySummaryDTO, error) {
	totals, err := uc.repo.GetTotals(ctx, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("reportes: totales del %s: %w", start.Format(dateLayout), err)
	}
	return &dto.DailySummaryDTO{
		Date:             start.Format(dateLayout),
		TotalRevenue:     totals.Revenue.Round(2),
		TotalOrders:      totals.Orders,
		TotalDiscount:    totals.Discount.Round(2),
		TotalDeliveryFee: totals.DeliveryFee.Round(2),
		AverageTicket:    business.AverageTicket(totals.Revenue, totals.Orders),
	}, nil
}

// AverageTicketByWaiter ingresos, pedidos y ticket promedio por mesero (histórico completo).
func (uc *ReportUseCase) AverageTicketByWaiter(ctx context.Context, p access.Principal) ([]dto.WaiterTicketDTO, error) {
	if err := uc.guard.Authorize(p, access.ActionReport); err != nil {
		return nil, err
	}
	groups, err := uc.repo.GetSalesByWaiter(ctx, p.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("reportes: ticket por mesero: %w", err)
	}
	out := make([]dto.WaiterTicketDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.WaiterTicketDTO{
			WaiterID:      g.Key,
			WaiterName:    g.Label,
			TotalRevenue:  g.Revenue.Round(2),
			TotalOrders:   g.Orders,
			AverageTicket: business.AverageTicket(g.Revenue, g.Orders),
		})
	}
	return out, nil
}

// TotalSalesByOrigin ingresos, pedidos y ticket promedio por canal de origen.
func (uc *ReportUseCase) TotalSalesByOrigin(ctx context.Context, p access.Principal) ([]dto.OriginSalesDTO, error) {
	if err := uc.guard.Authorize(p, access.ActionReport); err != nil {
		return nil, err
	}
	groups, err := uc.repo.GetSalesByOrigin(ctx, p.RestaurantID, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("reportes: ventas por origen: %w", err)
	}
	return toOriginSales(groups), nil
}

// TopSellingItems ranking de ítems por unidades vendidas (limit por defecto 10, máximo 100).
func (uc *ReportUseCase) TopSellingItems(ctx context.Context, p access.Principal, limit int) ([]dto.TopItemDTO, error) {
	if err := uc.guard.Authorize(p, access.ActionReport); err != nil {
		return nil, err
	}
	items, err := uc.repo.GetTopItems(ctx, p.RestaurantID, time.Time{}, time.Time{}, business.NormalizeTopLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("reportes: ranking de ítems: %w", err)
	}
	return toTopItems(items), nil
}

// parseDay interpreta YYYY-MM-DD en la zona del servidor; vacío = hoy.
func (uc *ReportUseCase) parseDay(date string) (time.Time, error) {
	if date == "" {
		return business.StartOfDay(uc.now().In(uc.loc)), nil
	}
	day, err := time.ParseInLocation(dateLayout, date, uc.loc)
	if err != nil {
		return time.Time{}, &business.ValidationError{
			Message: fmt.Sprintf("date must be YYYY-MM-DD, got %q", date),
			Fields:  []string{"date"},
		}
	}
	return day, nil
}

func toOriginSales(groups []entity.SalesGroup) []dto.OriginSalesDTO {
	out := make([]dto.OriginSalesDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.OriginSalesDTO{
			Origin:        g.Key,
			TotalRevenue:  g.Revenue.Round(2),
			TotalOrders:   g.Orders,
			AverageTicket: business.AverageTicket(g.Revenue, g.Orders),
		})
	}
	return out
}

func toTopItems(items []entity.ItemSales) []dto.TopItemDTO {
	out := make([]dto.TopItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TopItemDTO{
			ItemID:         it.ItemID,
			ItemName:       it.ItemName,
			Category:       string(it.Category),
			TotalUnitsSold: it.UnitsSold,
		})
	}
	return out
}

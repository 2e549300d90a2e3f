package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/BarApp-api/internal/application/dto"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

const dashboardTopItems = 5 // ítems en el widget del dashboard

// Dashboard resumen del día y del mes en curso más el Top-5 de ítems del mes.
//
// Tres llamadas en paralelo; la primera que falle cancela las demás:
//  1. GetTotals(hoy)
//  2. GetTotals(mes)
//  3. GetTopItems(mes, top 5)
func (uc *ReportUseCase) Dashboard(ctx context.Context, p access.Principal) (*dto.DashboardDTO, error) {
	if err := uc.guard.Authorize(p, access.ActionReport); err != nil {
		return nil, err
	}
	now := uc.now().In(uc.loc)

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := business.StartOfDay(now)
	todayEnd := business.EndOfDay(now)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59.999
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.loc)

	var (
		out = dto.DashboardDTO{DateLabel: monthLabel(now)}
		top []entity.ItemSales
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.summarize(gctx, p.RestaurantID, todayStart, todayEnd)
		if err != nil {
			return fmt.Errorf("dashboard: métricas de hoy: %w", err)
		}
		out.Today = *s
		return nil
	})
	g.Go(func() error {
		s, err := uc.summarize(gctx, p.RestaurantID, monthStart, todayEnd)
		if err != nil {
			return fmt.Errorf("dashboard: métricas del mes: %w", err)
		}
		out.Month = *s
		return nil
	})
	g.Go(func() error {
		items, err := uc.repo.GetTopItems(gctx, p.RestaurantID, monthStart, todayEnd, dashboardTopItems)
		if err != nil {
			return fmt.Errorf("dashboard: top ítems: %w", err)
		}
		top = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.TopItems = toTopItems(top)
	return &out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}

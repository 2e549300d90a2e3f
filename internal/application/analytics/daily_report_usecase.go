package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/BarApp-api/internal/application/dto"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
)

const pdfTopItems = 5

// DailyReportGenerator puerto para renderizar el cierre diario (implementado en infrastructure/pdf).
type DailyReportGenerator interface {
	GenerateDailyReport(ctx context.Context, data dto.DailyReportData) ([]byte, error)
}

// DailyReportUseCase arma el PDF de cierre diario.
type DailyReportUseCase struct {
	reports   *ReportUseCase
	generator DailyReportGenerator
}

// NewDailyReportUseCase construye el caso de uso.
func NewDailyReportUseCase(reports *ReportUseCase, generator DailyReportGenerator) *DailyReportUseCase {
	return &DailyReportUseCase{reports: reports, generator: generator}
}

// Generate devuelve (pdfBytes, filename). Las tres consultas corren en paralelo;
// la primera que falle cancela las demás.
func (uc *DailyReportUseCase) Generate(ctx context.Context, p access.Principal, date string) ([]byte, string, error) {
	r := uc.reports
	if err := r.guard.Authorize(p, access.ActionReport); err != nil {
		return nil, "", err
	}
	day, err := r.parseDay(date)
	if err != nil {
		return nil, "", err
	}

	data := dto.DailyReportData{RestaurantID: p.RestaurantID}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := r.summarize(gctx, p.RestaurantID, day, business.EndOfDay(day))
		if err != nil {
			return err
		}
		data.Summary = *s
		return nil
	})
	g.Go(func() error {
		groups, err := r.repo.GetSalesByOrigin(gctx, p.RestaurantID, day, business.EndOfDay(day))
		if err != nil {
			return fmt.Errorf("cierre: ventas por origen: %w", err)
		}
		data.ByOrigin = toOriginSales(groups)
		return nil
	})
	g.Go(func() error {
		items, err := r.repo.GetTopItems(gctx, p.RestaurantID, day, business.EndOfDay(day), pdfTopItems)
		if err != nil {
			return fmt.Errorf("cierre: top ítems: %w", err)
		}
		data.TopItems = toTopItems(items)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	pdf, err := uc.generator.GenerateDailyReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("cierre: generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("cierre-%s.pdf", data.Summary.Date), nil
}

package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/BarApp-api/internal/application/analytics"
	"github.com/jhoicas/BarApp-api/internal/application/usecase"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BusinessUC  *usecase.BusinessUseCase
	QueryUC     *usecase.BusinessQueryUseCase
	ReportUC    *appanalytics.ReportUseCase
	DailyReport *appanalytics.DailyReportUseCase
	Guard       *access.Guard
	JWTSecret   string
}

// Router registra las rutas de la API.
// Las rutas estáticas se registran antes que /:id para que Fiber no las capture como id.
func Router(app *fiber.App, deps RouterDeps) {
	biz := app.Group("/business", AuthMiddleware(deps.JWTSecret))

	businessHandler := NewBusinessHandler(deps.BusinessUC)
	reportHandler := NewReportHandler(deps.ReportUC, deps.DailyReport)
	queryHandler := NewQueryHandler(deps.QueryUC)

	// Alta (staff autenticado y procesos internos)
	biz.Post("/create", businessHandler.Create)

	// Reportes (ADMIN, MANAGER)
	report := RequireAction(deps.Guard, access.ActionReport)
	biz.Get("/daily-summary", report, reportHandler.DailySummary)
	biz.Get("/daily-summary/pdf", report, reportHandler.DailySummaryPDF)
	biz.Get("/average-ticket-by-waiter", report, reportHandler.AverageTicketByWaiter)
	biz.Get("/total-sales-by-origin", report, reportHandler.TotalSalesByOrigin)
	biz.Get("/top-selling-items", report, reportHandler.TopSellingItems)
	biz.Get("/dashboard", report, reportHandler.Dashboard)

	// Consultas por campo (ADMIN, MANAGER)
	for _, field := range business.QueryFields {
		biz.Get("/"+field.Route, report, queryHandler.Query(field))
	}

	// Lecturas puntuales (cualquier usuario autenticado del restaurante)
	biz.Get("/order/:id", businessHandler.GetByOrderID)
	biz.Get("/:id", businessHandler.GetByID)
}

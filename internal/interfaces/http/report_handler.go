package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/BarApp-api/internal/application/analytics"
	"github.com/jhoicas/BarApp-api/internal/application/dto"
)

// ReportHandler reportes agregados (ADMIN y MANAGER).
type ReportHandler struct {
	uc  *appanalytics.ReportUseCase
	pdf *appanalytics.DailyReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase, pdf *appanalytics.DailyReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// DailySummary godoc
// @Summary      Resumen del día
// @Description  Ingresos, pedidos, descuentos, domicilios y ticket promedio del día. Sin pedidos devuelve ceros.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        date  query     string  false  "Día (YYYY-MM-DD). Default: hoy."
// @Success      200   {object}  dto.DailySummaryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /business/daily-summary [get]
func (h *ReportHandler) DailySummary(c *fiber.Ctx) error {
	out, err := h.uc.DailySummary(c.Context(), GetPrincipal(c), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AverageTicketByWaiter godoc
// @Summary      Ticket promedio por mesero
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   dto.WaiterTicketDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /business/average-ticket-by-waiter [get]
func (h *ReportHandler) AverageTicketByWaiter(c *fiber.Ctx) error {
	out, err := h.uc.AverageTicketByWaiter(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TotalSalesByOrigin godoc
// @Summary      Ventas por canal de origen
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   dto.OriginSalesDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /business/total-sales-by-origin [get]
func (h *ReportHandler) TotalSalesByOrigin(c *fiber.Ctx) error {
	out, err := h.uc.TotalSalesByOrigin(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopSellingItems godoc
// @Summary      Ítems más vendidos
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query     int  false  "Cantidad de ítems (default 10, máximo 100)"
// @Success      200    {array}   dto.TopItemDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /business/top-selling-items [get]
func (h *ReportHandler) TopSellingItems(c *fiber.Ctx) error {
	var req dto.TopItemsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "limit debe ser un entero",
		})
	}
	out, err := h.uc.TopSellingItems(c.Context(), GetPrincipal(c), req.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Dashboard del restaurante
// @Description  Resumen de hoy, del mes en curso y Top-5 de ítems del mes.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /business/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DailySummaryPDF godoc
// @Summary      PDF de cierre diario
// @Tags         reports
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        date  query     string  false  "Día (YYYY-MM-DD). Default: hoy."
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /business/daily-summary/pdf [get]
func (h *ReportHandler) DailySummaryPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdf.Generate(c.Context(), GetPrincipal(c), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BarApp-api/internal/application/usecase"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
)

// QueryHandler una ruta GET por cada entrada de business.QueryFields.
type QueryHandler struct {
	uc *usecase.BusinessQueryUseCase
}

// NewQueryHandler construye el handler.
func NewQueryHandler(uc *usecase.BusinessQueryUseCase) *QueryHandler {
	return &QueryHandler{uc: uc}
}

// Query godoc
// @Summary      Consulta por campo
// @Description  Rangos: startValue (obligatorio) y endValue (opcional, igual a startValue si falta), inclusivos.
// @Description  Enumerados e identidades: weekDay, paymentMethod, origin, waiterId, waiterName,
// @Description  transactionHandlerId, transactionHandlerName, neighborhood, reason. canceled no recibe parámetros.
// @Tags         business
// @Security     BearerAuth
// @Produce      json
// @Param        field       path      string  true   "date-range, hour-slot, discount, delivery-fee, customer-count, total-items, time-to-start, time-preparing, time-to-delivery, week-day, payment-method, origin, waiter-id, waiter-name, transaction-handler-id, transaction-handler-name, delivery-neighborhood, canceled, cancel-reason"
// @Param        startValue  query     string  false  "Límite inferior del rango (YYYY-MM-DD o RFC3339)"
// @Param        endValue    query     string  false  "Límite superior del rango"
// @Success      200         {array}   dto.BusinessResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      403         {object}  dto.ErrorResponse
// @Router       /business/{field} [get]
func (h *QueryHandler) Query(field business.QueryField) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lower, upper string
		switch {
		case field.IsRange():
			lower, upper = c.Query(business.ParamLower), c.Query(business.ParamUpper)
		case field.Param != "":
			lower = c.Query(field.Param)
		}
		out, err := h.uc.Query(c.Context(), GetPrincipal(c), field, lower, upper)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

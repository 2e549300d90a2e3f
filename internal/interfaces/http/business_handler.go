package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BarApp-api/internal/application/dto"
	"github.com/jhoicas/BarApp-api/internal/application/usecase"
)

// BusinessHandler alta y lectura puntual de registros de negocio.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pedido finalizado
// @Description  Valida y guarda la fotografía desnormalizada de un pedido. Un pedido solo puede registrarse una vez.
// @Tags         business
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateBusinessRequest  true  "Registro candidato"
// @Success      201   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /business/create [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro por id
// @Tags         business
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID del registro"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /business/{id} [get]
func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByOrderID godoc
// @Summary      Obtener registro por id de pedido
// @Tags         business
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID del pedido original"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /business/order/{id} [get]
func (h *BusinessHandler) GetByOrderID(c *fiber.Ctx) error {
	out, err := h.uc.GetByOrderID(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

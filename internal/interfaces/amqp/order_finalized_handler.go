// Package amqp traduce los eventos del broker a casos de uso.
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/BarApp-api/internal/application/dto"
	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/rabbitmq"
	"github.com/jhoicas/BarApp-api/pkg/logger"
)

// OrderFinalizedMessage cuerpo del evento order.finalized.
type OrderFinalizedMessage struct {
	RestaurantID string                    `json:"restaurantId"`
	Record       dto.CreateBusinessRequest `json:"record"`
}

// BusinessCreator lo implementa *usecase.BusinessUseCase.
type BusinessCreator interface {
	Create(ctx context.Context, p access.Principal, req dto.CreateBusinessRequest) (*dto.BusinessResponse, error)
}

// OrderFinalizedHandler crea el registro de negocio de cada pedido finalizado.
type OrderFinalizedHandler struct {
	uc  BusinessCreator
	log *logger.Logger
}

// NewOrderFinalizedHandler construye el handler.
func NewOrderFinalizedHandler(uc BusinessCreator, log *logger.Logger) *OrderFinalizedHandler {
	return &OrderFinalizedHandler{uc: uc, log: log}
}

// Handle devuelve nil si el registro se creó o ya existía (redelivery).
// Errores de datos van a la DLQ; el resto se reencola con rabbitmq.ErrRetry.
func (h *OrderFinalizedHandler) Handle(ctx context.Context, body []byte) error {
	var msg OrderFinalizedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("order.finalized: JSON inválido: %w", err)
	}
	restaurantID := strings.TrimSpace(msg.RestaurantID)
	if restaurantID == "" {
		return fmt.Errorf("order.finalized: restaurantId vacío")
	}

	out, err := h.uc.Create(ctx, access.SystemPrincipal(restaurantID), msg.Record)
	switch {
	case err == nil:
		h.log.Info().
			Str("restaurant_id", restaurantID).
			Str("business_id", out.ID).
			Str("order_id", out.OriginalOrderID).
			Msg("registro de negocio creado desde evento")
		return nil
	case errors.Is(err, domain.ErrDuplicate):
		h.log.Debug().Str("restaurant_id", restaurantID).Err(err).Msg("evento repetido, se descarta")
		return nil
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrForbidden):
		return fmt.Errorf("order.finalized: %w", err)
	default:
		return fmt.Errorf("order.finalized: %v: %w", err, rabbitmq.ErrRetry)
	}
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BarApp-api/pkg/logger"
)

// RequestLogger registra método, ruta, status, latencia y restaurante de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// el ErrorHandler aún no corrió; estimar el status
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("restaurant_id", GetRestaurantID(c)).
			Msg("http")
		return err
	}
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/redshowroom/pos-api/pkg/logger"
)

// RequestLogger journalise chaque requête HTTP: méthode, chemin, statut,
// durée. Les erreurs remontées par les handlers passent quand même par le
// gestionnaire d'erreurs de Fiber.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		evt := log.Info()
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("requête HTTP")
		return err
	}
}

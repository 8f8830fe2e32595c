package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-admin/pkg/logger"
	"github.com/jhoicas/Catalogo-admin/pkg/requestid"
)

// HeaderRequestID cabecera de correlación entrante y saliente.
const HeaderRequestID = requestid.Header

// RequestMiddleware asigna un X-Request-ID (respeta el del cliente si viene), lo deja en el
// UserContext para las llamadas al servicio remoto y registra cada petición al terminar.
func RequestMiddleware(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.SetUserContext(requestid.With(c.UserContext(), reqID))
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición")
		return err
	}
}

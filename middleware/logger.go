package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request at debug level.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if appErr, ok := shared.GetAppError(err); ok {
			status = appErr.StatusCode
		} else if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		log.WithFields(log.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
		}).Debug("request")
		return err
	}
}

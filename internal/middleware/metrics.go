// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"pingo/internal/telemetry"
)

// Metrics records request counts and latencies per route. The route
// pattern is used instead of the raw path so parameterised routes do
// not explode label cardinality.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		telemetry.HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

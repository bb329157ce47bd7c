// Package middleware contains HTTP middleware functions for the Cinna API.
// This file records per-request Prometheus metrics: a request counter and a
// latency histogram, labelled by method, route and status.
package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cinna/cinna-graphrag/internal/metrics"
)

// Metrics returns a middleware handler that times each request and records it
// in the collectors declared in the metrics package.
//
// c.Route().Path is used as the route label instead of c.Path() so that all
// requests to one route share a single label value — raw paths would explode
// metric cardinality the moment parameterised routes are added.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Run the rest of the chain first; the response status isn't known
		// until the handler has produced it.
		err := c.Next()

		method := c.Method()
		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

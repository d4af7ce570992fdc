package middleware

import (
	"customerHub/pkg/logger"
	"customerHub/pkg/metrics"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestMetrics tags every request with an id, records prometheus
// count/latency and writes one access log line.
func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := uuid.NewString()
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			method := c.Request().Method
			// the route pattern, not the raw URL, to keep label cardinality down
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)

			metrics.HTTPRequestLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()

			logger.Info("request handled",
				"request_id", requestID,
				"method", method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration", time.Since(start).String(),
			)

			return nil
		}
	}
}

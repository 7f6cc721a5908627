package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/workbridge/client/internal/metrics"
)

// Metrics counts portal requests by route pattern and final status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if c.Path() == "/metrics" {
				return err
			}

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.PortalRequestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			return err
		}
	}
}

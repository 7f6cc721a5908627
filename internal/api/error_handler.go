package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workbridge/client/internal/api/handler"
)

// errorResponse is the JSON error envelope for probe and API-style requests.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders JSON for /health routes and JSON clients, the error page otherwise.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if wantsJSON(c) {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}

		if rerr := handler.RenderError(c, code, msg); rerr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	code := handler.StatusFor(err)
	switch code {
	case http.StatusInternalServerError:
	case http.StatusBadGateway:
		log.Warn().Err(err).Str("path", c.Path()).Msg("marketplace api error")
		return code, "the marketplace API could not complete the request"
	default:
		return code, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func wantsJSON(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/health") {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

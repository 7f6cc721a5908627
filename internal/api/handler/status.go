package handler

import (
	"errors"
	"net/http"

	"github.com/workbridge/client/internal/core/domain"
)

// StatusFor maps a service error onto the HTTP status the portal answers with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrInvalidApplication):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRemoteUnavailable), errors.Is(err, domain.ErrRemoteRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

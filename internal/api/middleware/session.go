package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

// ContextAccount is the echo context key holding the session *domain.Account.
const ContextAccount = "account"

// Session loads the current session, if any, and injects the account into the
// context so every page can render the navbar.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if auth.IsAuthenticated(ctx) {
				account, err := auth.CurrentUser(ctx)
				switch {
				case err == nil:
					c.Set(ContextAccount, account)
				case !errors.Is(err, domain.ErrNotAuthenticated):
					return err
				}
			}
			return next(c)
		}
	}
}

// RequireSession redirects anonymous visitors to the login page.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if AccountFrom(c) == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// AccountFrom returns the session account injected by Session, or nil.
func AccountFrom(c echo.Context) *domain.Account {
	account, _ := c.Get(ContextAccount).(*domain.Account)
	return account
}

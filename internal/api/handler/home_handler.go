package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page with the navbar for the current session.
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", newPage(c, "Home", nil))
}

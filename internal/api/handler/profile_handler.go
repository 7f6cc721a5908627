package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/workbridge/client/internal/api/middleware"
	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type profileView struct {
	Account *domain.Account
	Profile domain.Profile
	Edit    bool
}

type profileForm struct {
	Title      string `form:"title"`
	Bio        string `form:"bio"`
	HourlyRate string `form:"hourly_rate"`
	Skills     string `form:"skills"`
}

// Show renders the profile card; ?edit=1 opens the edit form below it.
func (h *ProfileHandler) Show(c echo.Context) error {
	account := middleware.AccountFrom(c)
	profile, err := h.profiles.Get(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}
	view := profileView{Account: account, Profile: profile, Edit: c.QueryParam("edit") != ""}
	return c.Render(http.StatusOK, "profile.html", newPage(c, "Profile", view))
}

// Update replaces the session user's profile with the submitted form.
func (h *ProfileHandler) Update(c echo.Context) error {
	account := middleware.AccountFrom(c)

	var form profileForm
	if err := c.Bind(&form); err != nil {
		return h.updateFailed(c, account, domain.Profile{}, "invalid form")
	}

	profile := domain.Profile{
		Title:  strings.TrimSpace(form.Title),
		Bio:    strings.TrimSpace(form.Bio),
		Skills: strings.TrimSpace(form.Skills),
	}
	if rate := strings.TrimSpace(form.HourlyRate); rate != "" {
		d, err := decimal.NewFromString(rate)
		if err != nil {
			return h.updateFailed(c, account, profile, "hourly rate must be a number")
		}
		profile.HourlyRate = d
	}

	if err := h.profiles.Update(c.Request().Context(), account.ID, profile); err != nil {
		return h.updateFailed(c, account, profile, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/profile?notice=profile-updated")
}

func (h *ProfileHandler) updateFailed(c echo.Context, account *domain.Account, profile domain.Profile, msg string) error {
	p := newPage(c, "Profile", profileView{Account: account, Profile: profile, Edit: true})
	p.Error = "Error updating profile: " + msg
	return c.Render(http.StatusBadRequest, "profile.html", p)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupForm struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
	Role            string `form:"role" validate:"required,oneof=freelancer recruiter"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SignupPage renders the empty sign-up form.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", newPage(c, "Sign Up", signupForm{}))
}

// Signup registers the account, online or in fallback mode, and sends the new
// user to their profile.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return h.signupFailed(c, form, http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return h.signupFailed(c, form, http.StatusBadRequest, err.Error())
	}

	in := domain.NewRegisterInput(form.Email, form.Password, form.Role)
	if _, err := h.authService.Register(c.Request().Context(), in); err != nil {
		return h.signupFailed(c, form, StatusFor(err), err.Error())
	}

	return c.Redirect(http.StatusSeeOther, "/profile?notice=account-created")
}

func (h *AuthHandler) signupFailed(c echo.Context, form signupForm, code int, msg string) error {
	form.Password, form.ConfirmPassword = "", ""
	p := newPage(c, "Sign Up", form)
	p.Error = "Sign up failed: " + msg
	return c.Render(code, "signup.html", p)
}

// LoginPage renders the empty login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", newPage(c, "Login", loginForm{}))
}

// Login authenticates and redirects to the dashboard matching the role flags.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.loginFailed(c, form, http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return h.loginFailed(c, form, http.StatusBadRequest, err.Error())
	}

	account, err := h.authService.Login(c.Request().Context(), domain.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		return h.loginFailed(c, form, StatusFor(err), err.Error())
	}

	return c.Redirect(http.StatusSeeOther, landingPage(account)+"?notice=logged-in")
}

func (h *AuthHandler) loginFailed(c echo.Context, form loginForm, code int, msg string) error {
	form.Password = ""
	p := newPage(c, "Login", form)
	p.Error = "Login failed: " + msg
	return c.Render(code, "login.html", p)
}

// Logout clears the session and returns to the home page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/?notice=logged-out")
}

func landingPage(account *domain.Account) string {
	switch {
	case account.IsFreelancer:
		return "/dashboard/freelancer"
	case account.IsClient:
		return "/dashboard/recruiter"
	default:
		return "/profile"
	}
}

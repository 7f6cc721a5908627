package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/workbridge/client/internal/api/handler"
	"github.com/workbridge/client/internal/api/middleware"
	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

// Deps are the services and probes the portal is built from.
type Deps struct {
	Auth     ports.AuthService
	Profiles ports.ProfileService
	Jobs     ports.JobService
	Store    handler.Pinger
	Remote   handler.Pinger
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = handler.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLog(d.Log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Session(d.Auth))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	profileHandler := handler.NewProfileHandler(d.Profiles)
	jobHandler := handler.NewJobHandler(d.Jobs)

	e.GET("/", handler.Home)

	// --- Auth routes ---
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Session routes ---
	profile := e.Group("/profile", middleware.RequireSession())
	profile.GET("", profileHandler.Show)
	profile.POST("", profileHandler.Update)

	freelancer := middleware.RequireRole(domain.RoleFreelancer)
	e.GET("/dashboard/freelancer", jobHandler.Freelancer, freelancer)
	e.POST("/jobs/:id/apply", jobHandler.Apply, freelancer)
	e.GET("/applications", jobHandler.Applications, freelancer)
	e.GET("/dashboard/recruiter", jobHandler.Recruiter, middleware.RequireRole(domain.RoleRecruiter))

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Store, d.Remote)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – can we serve?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

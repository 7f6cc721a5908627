package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

type JobHandler struct {
	jobs ports.JobService
}

func NewJobHandler(jobs ports.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type applyForm struct {
	Proposal  string `form:"proposal"`
	BidAmount string `form:"bid_amount"`
}

// Freelancer lists open jobs with an apply form on each card.
func (h *JobHandler) Freelancer(c echo.Context) error {
	return h.renderJobs(c, "freelancer_dashboard.html", "Find Work", "")
}

// Recruiter lists jobs with their application counts.
func (h *JobHandler) Recruiter(c echo.Context) error {
	return h.renderJobs(c, "recruiter_dashboard.html", "My Jobs", "")
}

func (h *JobHandler) renderJobs(c echo.Context, tmpl, title, errMsg string) error {
	code := http.StatusOK
	jobs, err := h.jobs.ListJobs(c.Request().Context())
	if err != nil {
		code = StatusFor(err)
		errMsg = "Error loading jobs: " + err.Error()
	}
	p := newPage(c, title, jobs)
	if errMsg != "" {
		p.Error = errMsg
		if code == http.StatusOK {
			code = http.StatusBadRequest
		}
	}
	return c.Render(code, tmpl, p)
}

// Apply submits a proposal for the job in the path.
func (h *JobHandler) Apply(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusNotFound, "job not found")
	}

	var form applyForm
	if err := c.Bind(&form); err != nil {
		return h.renderJobs(c, "freelancer_dashboard.html", "Find Work", "Error: invalid form")
	}

	in := domain.ApplicationInput{JobID: id, Proposal: strings.TrimSpace(form.Proposal)}
	if bid := strings.TrimSpace(form.BidAmount); bid != "" {
		if in.BidAmount, err = decimal.NewFromString(bid); err != nil {
			return h.renderJobs(c, "freelancer_dashboard.html", "Find Work", "Error: bid amount must be a number")
		}
	}

	if _, err := h.jobs.Apply(c.Request().Context(), in); err != nil {
		return h.renderJobs(c, "freelancer_dashboard.html", "Find Work", "Error: "+err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard/freelancer?notice=applied")
}

// Applications lists the caller's submitted proposals.
func (h *JobHandler) Applications(c echo.Context) error {
	apps, err := h.jobs.MyApplications(c.Request().Context())
	if err != nil {
		p := newPage(c, "My Applications", []domain.Application(nil))
		p.Error = "Error loading applications: " + err.Error()
		return c.Render(StatusFor(err), "applications.html", p)
	}
	return c.Render(http.StatusOK, "applications.html", newPage(c, "My Applications", apps))
}

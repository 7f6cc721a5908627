package cli

import (
	"strings"
	"time"

	"github.com/workbridge/client/internal/core/domain"
)

type accountView struct {
	ID        string    `json:"id" yaml:"id"`
	Username  string    `json:"username" yaml:"username"`
	Email     string    `json:"email" yaml:"email"`
	Name      string    `json:"name" yaml:"name"`
	Role      string    `json:"role" yaml:"role"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func newAccountView(a *domain.Account) accountView {
	return accountView{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Name:      a.DisplayName(),
		Role:      a.Role(),
		CreatedAt: a.CreatedAt,
	}
}

func (v accountView) rows() [][]any {
	return [][]any{{v.ID, v.Username, v.Email, v.Role}}
}

var accountHeaders = []string{"ID", "Username", "Email", "Role"}

type profileView struct {
	Username   string   `json:"username" yaml:"username"`
	Title      string   `json:"title" yaml:"title"`
	Bio        string   `json:"bio" yaml:"bio"`
	HourlyRate string   `json:"hourly_rate" yaml:"hourly_rate"`
	Skills     []string `json:"skills" yaml:"skills"`
}

func newProfileView(a *domain.Account, p domain.Profile) profileView {
	return profileView{
		Username:   a.Username,
		Title:      p.Title,
		Bio:        p.Bio,
		HourlyRate: p.HourlyRate.String(),
		Skills:     p.SkillList(),
	}
}

func (v profileView) rows() [][]any {
	return [][]any{
		{"Username", v.Username},
		{"Title", orNotSet(v.Title)},
		{"Bio", orNotSet(v.Bio)},
		{"Hourly rate", "$" + v.HourlyRate + "/hr"},
		{"Skills", orNotSet(joinSkills(v.Skills))},
	}
}

var profileHeaders = []string{"Field", "Value"}

type jobView struct {
	ID           int64  `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Category     string `json:"category" yaml:"category"`
	Budget       string `json:"budget" yaml:"budget"`
	Applications int    `json:"applications" yaml:"applications"`
	Description  string `json:"description" yaml:"description"`
}

func newJobViews(jobs []domain.Job) []jobView {
	out := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobView{
			ID:           j.ID,
			Title:        j.Title,
			Category:     j.CategoryOrDefault(),
			Budget:       j.Budget.String(),
			Applications: j.Applications,
			Description:  j.Excerpt(),
		})
	}
	return out
}

var jobHeaders = []string{"ID", "Title", "Category", "Budget", "Applications"}

func jobRows(views []jobView) [][]any {
	rows := make([][]any, 0, len(views))
	for _, v := range views {
		rows = append(rows, []any{v.ID, v.Title, v.Category, "$" + v.Budget, v.Applications})
	}
	return rows
}

type applicationView struct {
	ID        int64  `json:"id" yaml:"id"`
	JobID     int64  `json:"job" yaml:"job"`
	BidAmount string `json:"bid_amount" yaml:"bid_amount"`
	Status    string `json:"status" yaml:"status"`
	Proposal  string `json:"proposal" yaml:"proposal"`
}

func newApplicationViews(apps []domain.Application) []applicationView {
	out := make([]applicationView, 0, len(apps))
	for _, a := range apps {
		out = append(out, applicationView{
			ID:        a.ID,
			JobID:     a.JobID,
			BidAmount: a.BidAmount.String(),
			Status:    a.Status,
			Proposal:  a.Proposal,
		})
	}
	return out
}

var applicationHeaders = []string{"ID", "Job", "Bid", "Status", "Proposal"}

func applicationRows(views []applicationView) [][]any {
	rows := make([][]any, 0, len(views))
	for _, v := range views {
		rows = append(rows, []any{v.ID, v.JobID, "$" + v.BidAmount, v.Status, v.Proposal})
	}
	return rows
}

func orNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}

func joinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultCategory = "General"
	excerptLength   = 150
)

// Job is a posting listed by the backend.
type Job struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Budget       decimal.Decimal `json:"budget"`
	Category     string          `json:"category,omitempty"`
	Applications int             `json:"applications"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at,omitempty"`
}

// Excerpt returns the first 150 runes of the description followed by "...".
func (j Job) Excerpt() string {
	r := []rune(j.Description)
	if len(r) > excerptLength {
		r = r[:excerptLength]
	}
	return string(r) + "..."
}

// CategoryOrDefault falls back to "General" for uncategorised jobs.
func (j Job) CategoryOrDefault() string {
	if j.Category == "" {
		return defaultCategory
	}
	return j.Category
}

// ApplicationInput is a freelancer's proposal for a job.
type ApplicationInput struct {
	JobID     int64
	Proposal  string
	BidAmount decimal.Decimal
}

// Validate rejects empty proposals and non-positive bids.
func (in ApplicationInput) Validate() error {
	if in.JobID <= 0 || in.Proposal == "" || !in.BidAmount.IsPositive() {
		return ErrInvalidApplication
	}
	return nil
}

// Application is a submitted proposal as reported by the backend.
type Application struct {
	ID        int64           `json:"id"`
	JobID     int64           `json:"job"`
	Proposal  string          `json:"proposal"`
	BidAmount decimal.Decimal `json:"bid_amount"`
	Status    string          `json:"status"`
	AppliedAt time.Time       `json:"applied_at,omitempty"`
}

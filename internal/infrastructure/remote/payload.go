package remote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/workbridge/client/internal/core/domain"
)

// --- Requests ---

type registerRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	IsFreelancer bool   `json:"is_freelancer"`
	IsClient     bool   `json:"is_client"`
	UserType     string `json:"user_type,omitempty"`
}

type applicationRequest struct {
	Job         int64           `json:"job"`
	Proposal    string          `json:"proposal"`
	CoverLetter string          `json:"cover_letter"`
	BidAmount   decimal.Decimal `json:"bid_amount"`
}

// --- Responses ---

// flexID accepts ids sent as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// flexCount accepts either a number or a list (whose length is the count).
type flexCount int

func (f *flexCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*f = flexCount(len(items))
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexCount(n)
	return nil
}

type accountPayload struct {
	ID           flexID     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	IsFreelancer *bool      `json:"is_freelancer"`
	IsClient     *bool      `json:"is_client"`
	UserType     string     `json:"user_type"`
	CreatedAt    *time.Time `json:"created_at"`
	DateJoined   *time.Time `json:"date_joined"`
}

// toDomain prefers explicit role flags and falls back to user_type.
func (p accountPayload) toDomain() domain.Account {
	a := domain.Account{
		ID:           string(p.ID),
		Username:     p.Username,
		Email:        p.Email,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		IsFreelancer: p.UserType == domain.RoleFreelancer,
		IsClient:     p.UserType == domain.RoleRecruiter,
	}
	if p.IsFreelancer != nil {
		a.IsFreelancer = *p.IsFreelancer
	}
	if p.IsClient != nil {
		a.IsClient = *p.IsClient
	}
	switch {
	case p.CreatedAt != nil:
		a.CreatedAt = p.CreatedAt.UTC()
	case p.DateJoined != nil:
		a.CreatedAt = p.DateJoined.UTC()
	}
	return a
}

type loginPayload struct {
	accountPayload
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

type jobPayload struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Budget       decimal.NullDecimal `json:"budget"`
	PayPerHour   decimal.NullDecimal `json:"pay_per_hour"`
	Category     string              `json:"category"`
	Applications flexCount           `json:"applications"`
	IsActive     *bool               `json:"is_active"`
	CreatedAt    *time.Time          `json:"created_at"`
}

func (p jobPayload) toDomain() domain.Job {
	j := domain.Job{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Applications: int(p.Applications),
		IsActive:     true,
	}
	switch {
	case p.Budget.Valid:
		j.Budget = p.Budget.Decimal
	case p.PayPerHour.Valid:
		j.Budget = p.PayPerHour.Decimal
	}
	if p.IsActive != nil {
		j.IsActive = *p.IsActive
	}
	if p.CreatedAt != nil {
		j.CreatedAt = p.CreatedAt.UTC()
	}
	return j
}

type applicationPayload struct {
	ID          int64               `json:"id"`
	Job         int64               `json:"job"`
	Proposal    string              `json:"proposal"`
	CoverLetter string              `json:"cover_letter"`
	BidAmount   decimal.NullDecimal `json:"bid_amount"`
	Status      string              `json:"status"`
	AppliedAt   *time.Time          `json:"applied_at"`
}

func (p applicationPayload) toDomain() domain.Application {
	a := domain.Application{
		ID:       p.ID,
		JobID:    p.Job,
		Proposal: p.Proposal,
		Status:   p.Status,
	}
	if a.Proposal == "" {
		a.Proposal = p.CoverLetter
	}
	if p.BidAmount.Valid {
		a.BidAmount = p.BidAmount.Decimal
	}
	if p.AppliedAt != nil {
		a.AppliedAt = p.AppliedAt.UTC()
	}
	return a
}

var errNoUserID = errors.New("token has no user_id claim")

// userIDFromToken reads the user_id claim of a backend access token without
// verifying its signature; the client holds no key and only needs the id.
func userIDFromToken(access string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return "", fmt.Errorf("parse access token: %w", err)
	}
	switch v := claims["user_id"].(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", errNoUserID
	}
}

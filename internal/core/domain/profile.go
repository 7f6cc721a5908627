package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Profile is the editable freelancer profile, keyed by account id.
// It is stored independently of the account and is never deleted.
type Profile struct {
	Title      string          `json:"title"`
	Bio        string          `json:"bio"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Skills     string          `json:"skills"`
}

// SkillList splits the comma-separated skills into trimmed, non-empty entries.
func (p Profile) SkillList() []string {
	parts := strings.Split(p.Skills, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsEmpty reports whether nothing has been filled in yet.
func (p Profile) IsEmpty() bool {
	return p.Title == "" && p.Bio == "" && p.Skills == "" && p.HourlyRate.IsZero()
}

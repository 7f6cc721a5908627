package domain

import (
	"strings"
	"time"
)

const (
	RoleFreelancer = "freelancer"
	RoleRecruiter  = "recruiter"
)

// Account is a registered marketplace user, either returned by the backend or
// synthesized locally in fallback mode.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	IsFreelancer bool      `json:"is_freelancer"`
	IsClient     bool      `json:"is_client"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName is the first name when known, the username otherwise.
func (a Account) DisplayName() string {
	if a.FirstName != "" {
		return a.FirstName
	}
	return a.Username
}

// Role maps the role flags onto the backend's user_type vocabulary.
func (a Account) Role() string {
	switch {
	case a.IsFreelancer:
		return RoleFreelancer
	case a.IsClient:
		return RoleRecruiter
	default:
		return ""
	}
}

// Snapshot returns a copy safe to keep in the session: no password material.
func (a Account) Snapshot() Account {
	a.PasswordHash = ""
	return a
}

// Matches reports whether login identifies this account by username or email.
func (a Account) Matches(login string) bool {
	return login != "" && (a.Username == login || a.Email == login)
}

// Credentials are what the login form submits. Username may hold an email.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput carries a new account's details to the auth service.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	IsFreelancer bool
	IsClient     bool
}

// Validate applies the sign-up form rules. Front ends call it before Register.
func (in RegisterInput) Validate() error {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return ErrInvalidInput
	}
	if len(in.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// MinPasswordLength is the shortest password the sign-up form accepts.
const MinPasswordLength = 6

// UsernameFromEmail derives a username from the local part of an email address.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}

// NewRegisterInput builds a RegisterInput from sign-up form values.
// role is RoleFreelancer or RoleRecruiter.
func NewRegisterInput(email, password, role string) RegisterInput {
	return RegisterInput{
		Username:     UsernameFromEmail(email),
		Email:        strings.TrimSpace(email),
		Password:     password,
		IsFreelancer: role == RoleFreelancer,
		IsClient:     role == RoleRecruiter,
	}
}

package handler

import (
	"strings"
	"testing"
)

func TestValidator_SignupForm(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		form signupForm
		want string
	}{
		{"valid", signupForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1", Role: "freelancer"}, ""},
		{"bad email", signupForm{Email: "nope", Password: "secret1", ConfirmPassword: "secret1", Role: "freelancer"}, "valid email"},
		{"short password", signupForm{Email: "a@b.co", Password: "abc", ConfirmPassword: "abc", Role: "freelancer"}, "password must be at least 6 characters long"},
		{"mismatch", signupForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2", Role: "recruiter"}, "passwords do not match"},
		{"no role", signupForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}, "role is required"},
		{"bad role", signupForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1", Role: "admin"}, "freelancer or recruiter"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.form)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

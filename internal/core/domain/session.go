package domain

// Session is the currently authenticated user and its opaque token.
// The token carries no expiry and is never validated client side.
type Session struct {
	User  Account `json:"user"`
	Token string  `json:"token"`
}

package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrInvalidApplication = errors.New("proposal and a positive bid amount are required")
	ErrRemoteUnavailable  = errors.New("remote api unavailable")
	ErrRemoteRejected     = errors.New("remote api rejected the request")
)

package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user_not_found")
	ErrIncorrectPassword = errors.New("incorrect_password")
	ErrInvalidPassword   = errors.New("invalid_password")
	ErrSessionNotFound   = errors.New("session_not_found")
	ErrInvalidSession    = errors.New("invalid_session")
	ErrSessionExpired    = errors.New("session_expired")
	ErrSessionRevoked    = errors.New("session_revoked")
)

package domain

import (
	"context"
	"time"
)

type Service interface {
	// Login is the sole authority on whether a credential is valid. On
	// success the returned user view carries no credential material.
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*Session, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	GetUser(ctx context.Context, userID int64) (*UserView, error)
}

type LoginRequest struct {
	Username  string
	Password  string
	UserAgent string
	IPAddress string
}

// UserView is an AdminUser with the credential field stripped.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResult struct {
	User      UserView
	RawToken  string
	ExpiresAt time.Time
	SessionID int64
}

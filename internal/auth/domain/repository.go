package domain

import (
	"context"
	"time"
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*AdminUser, error)
	FindByID(ctx context.Context, id int64) (*AdminUser, error)
	Create(ctx context.Context, user *AdminUser) error
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Count(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	UpdateLastSeen(ctx context.Context, sessionID int64, lastSeen time.Time) error
	RevokeSession(ctx context.Context, sessionID int64, revokedAt time.Time) error
}

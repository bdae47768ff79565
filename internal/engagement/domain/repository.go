package domain

import "context"

type Repository interface {
	// IncrementVisit atomically bumps the visit counter for the given date,
	// inserting {visitas:1, mensajes:0} when no row exists yet.
	IncrementVisit(ctx context.Context, date string) error
	ListStatistics(ctx context.Context, limit int) ([]DailyStatistic, error)

	CreateMessage(ctx context.Context, message *ContactMessage) error
	ListMessages(ctx context.Context) ([]ContactMessage, error)
	MarkMessageRead(ctx context.Context, id int64) error
	CountUnreadMessages(ctx context.Context) (int64, error)
}

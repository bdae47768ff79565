package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// RecordVisit increments today's visit counter. Idempotent per call:
	// N serialized calls on one calendar date yield a count of exactly N.
	RecordVisit(ctx context.Context) error

	SubmitMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error)
	ListMessages(ctx context.Context) ([]MessageResponse, error)
	// MarkMessageRead sets leido=true. Idempotent; the flag never reverts.
	MarkMessageRead(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int64, error)

	ListStatistics(ctx context.Context, limit int) ([]StatisticResponse, error)
}

type MessageRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type StatisticResponse struct {
	Date     string `json:"date"`
	Visits   int64  `json:"visits"`
	Messages int64  `json:"messages"`
}

// DefaultStatisticsLimit is the trailing window served to the admin panel.
const DefaultStatisticsLimit = 30

var (
	ErrNotFound       = errors.New("not_found")
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidMessage = errors.New("invalid_message")
)

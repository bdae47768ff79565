package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/polenmarket/polen/internal/clock"
	"github.com/polenmarket/polen/internal/engagement/domain"
	"github.com/polenmarket/polen/internal/engagement/repository"
	"github.com/polenmarket/polen/pkg/db"
)

func newTestService(t *testing.T, clk clock.Clock) domain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.ContactMessage{}, &domain.DailyStatistic{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(zap.NewNop(), repository.New(dbConn), node, clk)
}

func TestRecordVisitIncrementsSameDay(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	for i := 0; i < 5; i++ {
		if err := svc.RecordVisit(context.Background()); err != nil {
			t.Fatalf("record visit %d: %v", i, err)
		}
	}

	stats, err := svc.ListStatistics(context.Background(), 0)
	if err != nil {
		t.Fatalf("list statistics: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 statistic row, got %d", len(stats))
	}
	if stats[0].Date != "2024-03-15" {
		t.Fatalf("expected date 2024-03-15, got %s", stats[0].Date)
	}
	if stats[0].Visits != 5 {
		t.Fatalf("expected 5 visits, got %d", stats[0].Visits)
	}
}

func TestRecordVisitSplitsAcrossDays(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	if err := svc.RecordVisit(context.Background()); err != nil {
		t.Fatalf("record visit: %v", err)
	}
	clk.Advance(time.Hour)
	if err := svc.RecordVisit(context.Background()); err != nil {
		t.Fatalf("record visit next day: %v", err)
	}

	stats, err := svc.ListStatistics(context.Background(), 30)
	if err != nil {
		t.Fatalf("list statistics: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 statistic rows, got %d", len(stats))
	}
	// Descending by date: the newer day comes first.
	if stats[0].Date != "2024-03-16" || stats[1].Date != "2024-03-15" {
		t.Fatalf("unexpected order: %s, %s", stats[0].Date, stats[1].Date)
	}
	if stats[0].Visits != 1 || stats[1].Visits != 1 {
		t.Fatalf("expected 1 visit per day, got %d and %d", stats[0].Visits, stats[1].Visits)
	}
}

func TestSubmitMessageValidation(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	cases := []struct {
		name string
		req  domain.MessageRequest
		want error
	}{
		{"empty name", domain.MessageRequest{Email: "a@b.com", Message: "hola"}, domain.ErrInvalidName},
		{"bad email", domain.MessageRequest{Name: "Ana", Email: "not-an-email", Message: "hola"}, domain.ErrInvalidEmail},
		{"empty message", domain.MessageRequest{Name: "Ana", Email: "a@b.com"}, domain.ErrInvalidMessage},
	}
	for _, tc := range cases {
		if _, err := svc.SubmitMessage(context.Background(), tc.req); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestSubmitAndListMessages(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	phone := "  555 1234 "
	first, err := svc.SubmitMessage(context.Background(), domain.MessageRequest{
		Name:    "Ana",
		Email:   "Ana@Example.COM",
		Phone:   &phone,
		Message: "primer mensaje",
	})
	if err != nil {
		t.Fatalf("submit first: %v", err)
	}
	if first.Email != "ana@example.com" {
		t.Fatalf("expected lowercased email, got %s", first.Email)
	}
	if first.Phone == nil || *first.Phone != "555 1234" {
		t.Fatalf("expected trimmed phone, got %v", first.Phone)
	}

	clk.Advance(time.Minute)
	if _, err := svc.SubmitMessage(context.Background(), domain.MessageRequest{
		Name:    "Beto",
		Email:   "beto@example.com",
		Message: "segundo mensaje",
	}); err != nil {
		t.Fatalf("submit second: %v", err)
	}

	msgs, err := svc.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Name != "Beto" {
		t.Fatalf("expected newest first, got %s", msgs[0].Name)
	}
}

func TestMarkMessageReadIdempotent(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	msg, err := svc.SubmitMessage(context.Background(), domain.MessageRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "hola",
	})
	if err != nil {
		t.Fatalf("submit message: %v", err)
	}

	unread, err := svc.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if unread != 1 {
		t.Fatalf("expected 1 unread, got %d", unread)
	}

	for i := 0; i < 2; i++ {
		if err := svc.MarkMessageRead(context.Background(), msg.ID); err != nil {
			t.Fatalf("mark read attempt %d: %v", i+1, err)
		}
	}

	unread, err = svc.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("unread count after read: %v", err)
	}
	if unread != 0 {
		t.Fatalf("expected 0 unread, got %d", unread)
	}
}

func TestMarkMessageReadErrors(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	if err := svc.MarkMessageRead(context.Background(), "not-a-number"); err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := svc.MarkMessageRead(context.Background(), "123456789"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListStatisticsLimit(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, clk)

	for i := 0; i < 35; i++ {
		if err := svc.RecordVisit(context.Background()); err != nil {
			t.Fatalf("record visit day %d: %v", i, err)
		}
		clk.Advance(24 * time.Hour)
	}

	stats, err := svc.ListStatistics(context.Background(), domain.DefaultStatisticsLimit)
	if err != nil {
		t.Fatalf("list statistics: %v", err)
	}
	if len(stats) != domain.DefaultStatisticsLimit {
		t.Fatalf("expected %d rows, got %d", domain.DefaultStatisticsLimit, len(stats))
	}
	if stats[0].Date != "2024-02-04" {
		t.Fatalf("expected newest row 2024-02-04, got %s", stats[0].Date)
	}
}

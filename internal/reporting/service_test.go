package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	catalogdomain "github.com/polenmarket/polen/internal/catalog/domain"
	catalogrepository "github.com/polenmarket/polen/internal/catalog/repository"
	"github.com/polenmarket/polen/internal/clock"
	engagementdomain "github.com/polenmarket/polen/internal/engagement/domain"
	engagementrepository "github.com/polenmarket/polen/internal/engagement/repository"
	engagementservice "github.com/polenmarket/polen/internal/engagement/service"
	"github.com/polenmarket/polen/pkg/db"
)

func TestTodayVisits(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	stats := []engagementdomain.StatisticResponse{
		{Date: "2024-03-15", Visits: 12},
		{Date: "2024-03-14", Visits: 7},
	}

	if got := TodayVisits(stats, now); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := TodayVisits(stats[1:], now); got != 0 {
		t.Fatalf("expected 0 when today is absent, got %d", got)
	}
}

func TestWeekVisitsTrailingWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	stats := []engagementdomain.StatisticResponse{
		{Date: "2024-03-15", Visits: 3},  // today, counted
		{Date: "2024-03-09", Visits: 2},  // 6 days back, counted
		{Date: "2024-03-08", Visits: 50}, // 7 days back, outside the window
		{Date: "2024-03-05", Visits: 100},
		{Date: "garbage", Visits: 999}, // malformed, skipped
	}

	if got := WeekVisits(stats, now); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestBuildChartSeriesScaling(t *testing.T) {
	stats := []engagementdomain.StatisticResponse{
		{Date: "2024-03-15", Visits: 10},
		{Date: "2024-03-14", Visits: 5},
		{Date: "2024-03-13", Visits: 0},
	}

	points := BuildChartSeries(stats, DefaultChartHeight)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	// Reversed to chronological order.
	if points[0].Date != "2024-03-13" || points[2].Date != "2024-03-15" {
		t.Fatalf("unexpected order: %s .. %s", points[0].Date, points[2].Date)
	}
	if points[0].Label != "13/03" {
		t.Fatalf("expected label 13/03, got %s", points[0].Label)
	}
	if points[2].Height != DefaultChartHeight {
		t.Fatalf("expected max bar at full height, got %d", points[2].Height)
	}
	if points[1].Height != DefaultChartHeight/2 {
		t.Fatalf("expected half height, got %d", points[1].Height)
	}
	if points[0].Height != 0 {
		t.Fatalf("expected zero height, got %d", points[0].Height)
	}
}

func TestBuildChartSeriesAllZero(t *testing.T) {
	stats := []engagementdomain.StatisticResponse{
		{Date: "2024-03-15", Visits: 0},
		{Date: "2024-03-14", Visits: 0},
	}

	// The max is floored at 1, so an all-zero window still renders.
	points := BuildChartSeries(stats, DefaultChartHeight)
	for _, p := range points {
		if p.Height != 0 {
			t.Fatalf("expected zero heights, got %d for %s", p.Height, p.Date)
		}
	}
}

func TestSummaryAggregation(t *testing.T) {
	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&catalogdomain.Category{},
		&catalogdomain.Product{},
		&engagementdomain.ContactMessage{},
		&engagementdomain.DailyStatistic{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	engagementSvc := engagementservice.New(zap.NewNop(), engagementrepository.New(dbConn), node, clk)
	catalogRepo := catalogrepository.New(dbConn)
	svc := New(zap.NewNop(), engagementSvc, catalogRepo, clk)

	// Two visits today, one ten days ago.
	clk.Advance(-10 * 24 * time.Hour)
	if err := engagementSvc.RecordVisit(context.Background()); err != nil {
		t.Fatalf("record old visit: %v", err)
	}
	clk.Advance(10 * 24 * time.Hour)
	for i := 0; i < 2; i++ {
		if err := engagementSvc.RecordVisit(context.Background()); err != nil {
			t.Fatalf("record visit: %v", err)
		}
	}

	if _, err := engagementSvc.SubmitMessage(context.Background(), engagementdomain.MessageRequest{
		Name: "Ana", Email: "ana@example.com", Message: "hola",
	}); err != nil {
		t.Fatalf("submit message: %v", err)
	}

	if err := catalogRepo.CreateProduct(context.Background(), &catalogdomain.Product{
		ID: node.Generate().Int64(), Name: "Miel", Price: 100, Active: true,
	}); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if err := catalogRepo.CreateProduct(context.Background(), &catalogdomain.Product{
		ID: node.Generate().Int64(), Name: "Oculto", Price: 100, Active: false,
	}); err != nil {
		t.Fatalf("create inactive product: %v", err)
	}

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TodayVisits != 2 {
		t.Fatalf("expected 2 visits today, got %d", summary.TodayVisits)
	}
	if summary.WeekVisits != 2 {
		t.Fatalf("expected 2 visits this week, got %d", summary.WeekVisits)
	}
	if summary.UnreadMessages != 1 {
		t.Fatalf("expected 1 unread message, got %d", summary.UnreadMessages)
	}
	if summary.TotalProducts != 1 {
		t.Fatalf("expected 1 active product, got %d", summary.TotalProducts)
	}
}

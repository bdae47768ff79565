package reporting

import (
	"context"
	"time"

	catalogdomain "github.com/polenmarket/polen/internal/catalog/domain"
	"github.com/polenmarket/polen/internal/clock"
	engagementdomain "github.com/polenmarket/polen/internal/engagement/domain"
	"go.uber.org/zap"
)

// DefaultChartHeight matches the admin panel's drawable bar area in pixels.
const DefaultChartHeight = 220

type Summary struct {
	TodayVisits    int64 `json:"today_visits"`
	WeekVisits     int64 `json:"week_visits"`
	UnreadMessages int64 `json:"unread_messages"`
	TotalProducts  int64 `json:"total_products"`
}

type ChartPoint struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Visits int64  `json:"visits"`
	Height int    `json:"height"`
}

type Service struct {
	log        *zap.Logger
	engagement engagementdomain.Service
	catalog    catalogdomain.Repository
	clock      clock.Clock
}

func New(log *zap.Logger, engagement engagementdomain.Service, catalog catalogdomain.Repository, clk clock.Clock) *Service {
	return &Service{
		log:        log.Named("reporting.service"),
		engagement: engagement,
		catalog:    catalog,
		clock:      clk,
	}
}

// Summary aggregates today's visits, the trailing-7-day visit sum, the
// unread message count and the active product count for the dashboard.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	stats, err := s.engagement.ListStatistics(ctx, engagementdomain.DefaultStatisticsLimit)
	if err != nil {
		return nil, err
	}

	unread, err := s.engagement.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.CountActiveProducts(ctx)
	if err != nil {
		s.log.Error("count products", zap.Error(err))
		return nil, err
	}

	today := s.clock.Now()
	return &Summary{
		TodayVisits:    TodayVisits(stats, today),
		WeekVisits:     WeekVisits(stats, today),
		UnreadMessages: unread,
		TotalProducts:  products,
	}, nil
}

// ChartSeries returns the most recent statistics window in chronological
// order, with bar heights scaled against the window maximum.
func (s *Service) ChartSeries(ctx context.Context) ([]ChartPoint, error) {
	stats, err := s.engagement.ListStatistics(ctx, engagementdomain.DefaultStatisticsLimit)
	if err != nil {
		return nil, err
	}
	return BuildChartSeries(stats, DefaultChartHeight), nil
}

// TodayVisits returns the visit count of the row whose date equals the
// current calendar date, or 0 when absent.
func TodayVisits(stats []engagementdomain.StatisticResponse, now time.Time) int64 {
	today := now.Format(engagementdomain.DateLayout)
	for _, stat := range stats {
		if stat.Date == today {
			return stat.Visits
		}
	}
	return 0
}

// WeekVisits sums visit counts over the trailing 7 calendar days, inclusive
// of today. Rows with malformed dates are skipped.
func WeekVisits(stats []engagementdomain.StatisticResponse, now time.Time) int64 {
	today := truncateToDay(now)
	windowStart := today.AddDate(0, 0, -6)

	var sum int64
	for _, stat := range stats {
		day, err := time.ParseInLocation(engagementdomain.DateLayout, stat.Date, now.Location())
		if err != nil {
			continue
		}
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		sum += stat.Visits
	}
	return sum
}

// BuildChartSeries reverses a date-descending window to chronological order
// and scales each bar to the window maximum. The max is floored at 1 so an
// all-zero window yields zero-height bars instead of a division by zero.
func BuildChartSeries(stats []engagementdomain.StatisticResponse, chartHeight int) []ChartPoint {
	maxValue := int64(1)
	for _, stat := range stats {
		if stat.Visits > maxValue {
			maxValue = stat.Visits
		}
	}

	points := make([]ChartPoint, 0, len(stats))
	for i := len(stats) - 1; i >= 0; i-- {
		stat := stats[i]
		points = append(points, ChartPoint{
			Date:   stat.Date,
			Label:  chartLabel(stat.Date),
			Visits: stat.Visits,
			Height: int(float64(stat.Visits) / float64(maxValue) * float64(chartHeight)),
		})
	}
	return points
}

func chartLabel(date string) string {
	day, err := time.Parse(engagementdomain.DateLayout, date)
	if err != nil {
		return date
	}
	return day.Format("02/01")
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

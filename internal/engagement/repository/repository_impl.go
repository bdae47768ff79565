package repository

import (
	"context"

	"github.com/polenmarket/polen/internal/engagement/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

// IncrementVisit is a single atomic upsert. The legacy implementation did a
// read-then-write pair that could lose increments under concurrency; pushing
// the increment into ON CONFLICT delegates atomicity to the backend.
func (r *repo) IncrementVisit(ctx context.Context, date string) error {
	stat := domain.DailyStatistic{Date: date, Visits: 1, Messages: 0}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "fecha"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"visitas": gorm.Expr("estadisticas.visitas + 1"),
			}),
		}).
		Create(&stat).Error
}

func (r *repo) ListStatistics(ctx context.Context, limit int) ([]domain.DailyStatistic, error) {
	var items []domain.DailyStatistic
	err := r.db.WithContext(ctx).
		Order("fecha DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) CreateMessage(ctx context.Context, message *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *repo) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	var items []domain.ContactMessage
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) MarkMessageRead(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("leido", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) CountUnreadMessages(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("leido = ?", false).
		Count(&count).Error
	return count, err
}

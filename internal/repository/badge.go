package repository

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type BadgeRepository interface {
	// Award inserts the badge if the user does not own it yet. It reports
	// whether a row was actually written, so callers can tell a fresh award
	// from an already-owned badge without a read-before-write race.
	Award(ctx context.Context, data *entity.Badge) (bool, error)

	GetByUserID(ctx context.Context, userID int64) ([]entity.Badge, error)
	UpdateNotification(ctx context.Context, userID int64) error
}

type badgeRepository struct{}

func NewBadgeRepository() *badgeRepository {
	return &badgeRepository{}
}

func (r *badgeRepository) Award(ctx context.Context, data *entity.Badge) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(data)
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected > 0, nil
}

func (r *badgeRepository) GetByUserID(ctx context.Context, userID int64) ([]entity.Badge, error) {
	result := []entity.Badge{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *badgeRepository) UpdateNotification(ctx context.Context, userID int64) error {
	return xcontext.DB(ctx).Model(&entity.Badge{}).
		Where("user_id=?", userID).
		Update("was_notified", true).Error
}

package repository

import (
	"context"
	"time"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

type RatingRepository interface {
	Create(ctx context.Context, data *entity.Rating) error
	GetByFromUserAndDate(ctx context.Context, fromUserID int64, date time.Time) (*entity.Rating, error)
	GetByToUserAndDate(ctx context.Context, toUserID int64, date time.Time) (*entity.Rating, error)
	CountByFromUser(ctx context.Context, fromUserID int64) (int64, error)
}

type ratingRepository struct{}

func NewRatingRepository() *ratingRepository {
	return &ratingRepository{}
}

func (r *ratingRepository) Create(ctx context.Context, data *entity.Rating) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *ratingRepository) GetByFromUserAndDate(
	ctx context.Context, fromUserID int64, date time.Time,
) (*entity.Rating, error) {
	var result entity.Rating
	err := xcontext.DB(ctx).
		Where("from_user_id=? AND date=?", fromUserID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ratingRepository) GetByToUserAndDate(
	ctx context.Context, toUserID int64, date time.Time,
) (*entity.Rating, error) {
	var result entity.Rating
	err := xcontext.DB(ctx).
		Where("to_user_id=? AND date=?", toUserID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ratingRepository) CountByFromUser(ctx context.Context, fromUserID int64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Rating{}).
		Where("from_user_id=?", fromUserID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

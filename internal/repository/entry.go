package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
	"gorm.io/gorm"
)

type EntryRepository interface {
	// Upsert writes the entry for (data.UserID, data.Date), overwriting an
	// existing one. It reports whether an existing entry was updated and,
	// if so, returns the previous rating value.
	Upsert(ctx context.Context, data *entity.Entry) (isUpdate bool, previousRating int, err error)

	GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*entity.Entry, error)
	GetDatesByUserID(ctx context.Context, userID int64) ([]time.Time, error)
	GetByDate(ctx context.Context, date time.Time) ([]entity.Entry, error)
	GetByUserAndRange(ctx context.Context, userID int64, start, end time.Time) ([]entity.Entry, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)

	// PickUnassigned returns one entry of the given date, chosen at random
	// among entries whose author is neither excludeUserID nor already a
	// reviewee in an assignment of that date. gorm.ErrRecordNotFound means
	// the candidate pool is empty.
	PickUnassigned(ctx context.Context, date time.Time, excludeUserID int64) (*entity.Entry, error)

	// GetRatingTotals sums ratings per user over [start, end). Zero bounds
	// mean the whole history.
	GetRatingTotals(ctx context.Context, start, end time.Time) ([]UserRatingTotal, error)
}

type UserRatingTotal struct {
	UserID int64
	Total  int64
}

type entryRepository struct{}

func NewEntryRepository() *entryRepository {
	return &entryRepository{}
}

func (r *entryRepository) Upsert(ctx context.Context, data *entity.Entry) (bool, int, error) {
	var existing entity.Entry
	err := xcontext.DB(ctx).
		Where("user_id=? AND date=?", data.UserID, data.Date).
		Take(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, err
		}

		return false, 0, xcontext.DB(ctx).Create(data).Error
	}

	err = xcontext.DB(ctx).Model(&entity.Entry{}).
		Where("id=?", existing.ID).
		Updates(map[string]any{
			"rating":  data.Rating,
			"comment": data.Comment,
			"tags":    data.Tags,
			"gif_url": data.GifURL,
		}).Error
	if err != nil {
		return false, 0, err
	}

	data.ID = existing.ID
	return true, existing.Rating, nil
}

func (r *entryRepository) GetByUserAndDate(
	ctx context.Context, userID int64, date time.Time,
) (*entity.Entry, error) {
	var result entity.Entry
	err := xcontext.DB(ctx).
		Where("user_id=? AND date=?", userID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *entryRepository) GetDatesByUserID(ctx context.Context, userID int64) ([]time.Time, error) {
	result := []time.Time{}
	err := xcontext.DB(ctx).Model(&entity.Entry{}).
		Where("user_id=?", userID).
		Order("date ASC").
		Pluck("date", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *entryRepository) GetByDate(ctx context.Context, date time.Time) ([]entity.Entry, error) {
	result := []entity.Entry{}
	err := xcontext.DB(ctx).
		Preload("User").
		Where("date=?", date).
		Order("rating DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *entryRepository) GetByUserAndRange(
	ctx context.Context, userID int64, start, end time.Time,
) ([]entity.Entry, error) {
	result := []entity.Entry{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *entryRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Entry{}).
		Where("user_id=?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *entryRepository) GetRatingTotals(
	ctx context.Context, start, end time.Time,
) ([]UserRatingTotal, error) {
	tx := xcontext.DB(ctx).Model(&entity.Entry{}).
		Select("user_id, SUM(rating) AS total").
		Group("user_id")

	if !start.IsZero() {
		tx = tx.Where("date >= ? AND date < ?", start, end)
	}

	result := []UserRatingTotal{}
	if err := tx.Scan(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *entryRepository) PickUnassigned(
	ctx context.Context, date time.Time, excludeUserID int64,
) (*entity.Entry, error) {
	db := xcontext.DB(ctx)

	// RANDOM() covers sqlite, mysql spells it RAND().
	random := "RANDOM()"
	if db.Dialector.Name() == "mysql" {
		random = "RAND()"
	}

	assigned := db.Session(&gorm.Session{NewDB: true}).
		Model(&entity.Assignment{}).
		Select("reviewee_id").
		Where("date=?", date)

	var result entity.Entry
	err := db.
		Where("date=?", date).
		Where("user_id <> ?", excludeUserID).
		Where("user_id NOT IN (?)", assigned).
		Order(random).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

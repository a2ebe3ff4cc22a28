package repository

import (
	"context"
	"time"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

type GuessRepository interface {
	Create(ctx context.Context, data *entity.Guess) error
	GetByGuesserAndDate(ctx context.Context, guesserID int64, date time.Time) (*entity.Guess, error)

	// GetCorrectAuthorDates returns, ascending, the dates on which the
	// guesser identified the entry author correctly.
	GetCorrectAuthorDates(ctx context.Context, guesserID int64) ([]time.Time, error)

	CountCorrectAuthor(ctx context.Context, guesserID int64) (int64, error)
}

type guessRepository struct{}

func NewGuessRepository() *guessRepository {
	return &guessRepository{}
}

func (r *guessRepository) Create(ctx context.Context, data *entity.Guess) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *guessRepository) GetByGuesserAndDate(
	ctx context.Context, guesserID int64, date time.Time,
) (*entity.Guess, error) {
	var result entity.Guess
	err := xcontext.DB(ctx).
		Where("guesser_id=? AND date=?", guesserID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *guessRepository) GetCorrectAuthorDates(ctx context.Context, guesserID int64) ([]time.Time, error) {
	result := []time.Time{}
	err := xcontext.DB(ctx).Model(&entity.Guess{}).
		Where("guesser_id=? AND author_correct=?", guesserID, true).
		Order("date ASC").
		Pluck("date", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guessRepository) CountCorrectAuthor(ctx context.Context, guesserID int64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Guess{}).
		Where("guesser_id=? AND author_correct=?", guesserID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

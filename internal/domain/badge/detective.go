package badge

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/domain/streak"
	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
)

const DetectiveFamily = "detective"

// detectiveScanner measures the run of consecutive days on which the user
// guessed the author of their assigned entry correctly. Guesses always
// target yesterday's entries, so the reference day for the streak is
// yesterday, not today.
type detectiveScanner struct {
	guessRepo repository.GuessRepository
}

func NewDetectiveScanner(guessRepo repository.GuessRepository) *detectiveScanner {
	return &detectiveScanner{guessRepo: guessRepo}
}

func (detectiveScanner) Family() string {
	return DetectiveFamily
}

func (detectiveScanner) Thresholds() []Threshold {
	return []Threshold{
		{Name: entity.BadgeDetective3, Value: 3},
		{Name: entity.BadgeDetective7, Value: 7},
		{Name: entity.BadgeDetective30, Value: 30},
	}
}

func (s *detectiveScanner) Signal(ctx context.Context, userID int64) (int, error) {
	dates, err := s.guessRepo.GetCorrectAuthorDates(ctx, userID)
	if err != nil {
		return 0, err
	}

	return streak.Calculate(dates, dateutil.Yesterday()).Current, nil
}

package badge

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/domain/streak"
	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
)

const StreakFamily = "streak"

// streakScanner measures the user's current run of consecutive entry days.
type streakScanner struct {
	entryRepo repository.EntryRepository
}

func NewStreakScanner(entryRepo repository.EntryRepository) *streakScanner {
	return &streakScanner{entryRepo: entryRepo}
}

func (streakScanner) Family() string {
	return StreakFamily
}

func (streakScanner) Thresholds() []Threshold {
	return []Threshold{
		{Name: entity.BadgeStreak3, Value: 3},
		{Name: entity.BadgeStreak7, Value: 7},
		{Name: entity.BadgeStreak30, Value: 30},
		{Name: entity.BadgeStreak100, Value: 100},
	}
}

func (s *streakScanner) Signal(ctx context.Context, userID int64) (int, error) {
	dates, err := s.entryRepo.GetDatesByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return streak.Calculate(dates, dateutil.Today()).Current, nil
}

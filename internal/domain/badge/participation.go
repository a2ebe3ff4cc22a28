package badge

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
)

const ParticipationFamily = "participation"

// participationScanner counts how many entries a user has written in
// total.
type participationScanner struct {
	entryRepo repository.EntryRepository
}

func NewParticipationScanner(entryRepo repository.EntryRepository) *participationScanner {
	return &participationScanner{entryRepo: entryRepo}
}

func (participationScanner) Family() string {
	return ParticipationFamily
}

func (participationScanner) Thresholds() []Threshold {
	return []Threshold{
		{Name: entity.BadgeFirstEntry, Value: 1},
		{Name: entity.BadgeEntries30, Value: 30},
		{Name: entity.BadgeEntries100, Value: 100},
	}
}

func (s *participationScanner) Signal(ctx context.Context, userID int64) (int, error) {
	count, err := s.entryRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

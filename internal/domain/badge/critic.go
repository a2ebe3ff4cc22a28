package badge

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
)

const CriticFamily = "critic"

// criticScanner counts the reviews a user has submitted in total.
type criticScanner struct {
	ratingRepo repository.RatingRepository
}

func NewCriticScanner(ratingRepo repository.RatingRepository) *criticScanner {
	return &criticScanner{ratingRepo: ratingRepo}
}

func (criticScanner) Family() string {
	return CriticFamily
}

func (criticScanner) Thresholds() []Threshold {
	return []Threshold{
		{Name: entity.BadgeCritic10, Value: 10},
		{Name: entity.BadgeCritic50, Value: 50},
		{Name: entity.BadgeCritic100, Value: 100},
	}
}

func (s *criticScanner) Signal(ctx context.Context, userID int64) (int, error) {
	count, err := s.ratingRepo.CountByFromUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

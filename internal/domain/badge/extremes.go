package badge

import (
	"context"
	"errors"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	PerfectDayFamily = "perfect_day"
	RoughDayFamily   = "rough_day"
)

// perfectDayScanner fires when today's entry carries the maximum rating.
type perfectDayScanner struct {
	entryRepo repository.EntryRepository
}

func NewPerfectDayScanner(entryRepo repository.EntryRepository) *perfectDayScanner {
	return &perfectDayScanner{entryRepo: entryRepo}
}

func (perfectDayScanner) Family() string {
	return PerfectDayFamily
}

func (perfectDayScanner) Thresholds() []Threshold {
	return []Threshold{{Name: entity.BadgePerfectDay, Value: 1}}
}

func (s *perfectDayScanner) Signal(ctx context.Context, userID int64) (int, error) {
	entry, err := s.entryRepo.GetByUserAndDate(ctx, userID, dateutil.Today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, err
	}

	if entry.Rating == xcontext.Configs(ctx).Journal.MaxRating {
		return 1, nil
	}

	return 0, nil
}

// roughDayScanner fires when today's entry hit the bottom of the scale.
// Surviving a zero day deserves something.
type roughDayScanner struct {
	entryRepo repository.EntryRepository
}

func NewRoughDayScanner(entryRepo repository.EntryRepository) *roughDayScanner {
	return &roughDayScanner{entryRepo: entryRepo}
}

func (roughDayScanner) Family() string {
	return RoughDayFamily
}

func (roughDayScanner) Thresholds() []Threshold {
	return []Threshold{{Name: entity.BadgeRoughDay, Value: 1}}
}

func (s *roughDayScanner) Signal(ctx context.Context, userID int64) (int, error) {
	entry, err := s.entryRepo.GetByUserAndDate(ctx, userID, dateutil.Today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, err
	}

	if entry.Rating == 0 {
		return 1, nil
	}

	return 0, nil
}

package badge

import (
	"context"
	"testing"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type fixedScanner struct {
	family     string
	thresholds []Threshold
	signal     int
}

func (s *fixedScanner) Family() string {
	return s.family
}

func (s *fixedScanner) Thresholds() []Threshold {
	return s.thresholds
}

func (s *fixedScanner) Signal(ctx context.Context, userID int64) (int, error) {
	return s.signal, nil
}

func Test_Manager_ScanAndGive(t *testing.T) {
	ctx := testutil.MockContext()
	user := testutil.SampleUser(ctx, nil)

	scanner := &fixedScanner{
		family: "streak",
		thresholds: []Threshold{
			{Name: entity.BadgeStreak3, Value: 3},
			{Name: entity.BadgeStreak7, Value: 7},
			{Name: entity.BadgeStreak30, Value: 30},
		},
		signal: 8,
	}

	manager := NewManager(repository.NewBadgeRepository(), scanner)

	// A signal of 8 clears the 3 and 7 thresholds but not 30.
	newBadges, err := manager.WithBadges("streak").ScanAndGive(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []entity.BadgeName{entity.BadgeStreak3, entity.BadgeStreak7}, newBadges)

	// The second scan finds the same signal and awards nothing new.
	newBadges, err = manager.WithBadges("streak").ScanAndGive(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, newBadges)

	// The signal grows past the last threshold; only the missing badge is
	// awarded.
	scanner.signal = 31
	newBadges, err = manager.WithBadges("streak").ScanAndGive(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []entity.BadgeName{entity.BadgeStreak30}, newBadges)
}

func Test_Manager_ScanAndGive_unknownFamily(t *testing.T) {
	ctx := testutil.MockContext()
	manager := NewManager(repository.NewBadgeRepository())

	_, err := manager.WithBadges("does-not-exist").ScanAndGive(ctx, 1)
	require.Error(t, err)
}

func Test_Manager_Progress(t *testing.T) {
	ctx := testutil.MockContext()
	user := testutil.SampleUser(ctx, nil)

	manager := NewManager(
		repository.NewBadgeRepository(),
		&fixedScanner{
			family:     "critic",
			thresholds: []Threshold{{Name: entity.BadgeCritic10, Value: 10}},
			signal:     4,
		},
	)

	progress, err := manager.Progress(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	require.Equal(t, "critic_10", progress[0].Name)
	require.Equal(t, 10, progress[0].Threshold)
	require.Equal(t, 4, progress[0].Current)
	require.False(t, progress[0].Earned)
}

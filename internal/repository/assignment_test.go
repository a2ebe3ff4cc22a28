package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_assignmentRepository_uniqueness(t *testing.T) {
	ctx := testutil.MockContext()
	assignmentRepo := repository.NewAssignmentRepository()

	reviewer1 := testutil.SampleUser(ctx, nil)
	reviewer2 := testutil.SampleUser(ctx, nil)
	reviewee1 := testutil.SampleUser(ctx, nil)
	reviewee2 := testutil.SampleUser(ctx, nil)

	date := dateutil.Yesterday()
	require.NoError(t, assignmentRepo.Create(ctx, &entity.Assignment{
		Base:       entity.Base{ID: uuid.NewString()},
		ReviewerID: reviewer1.ID,
		RevieweeID: reviewee1.ID,
		Date:       date,
	}))

	// A reviewer cannot be assigned twice on the same day.
	err := assignmentRepo.Create(ctx, &entity.Assignment{
		Base:       entity.Base{ID: uuid.NewString()},
		ReviewerID: reviewer1.ID,
		RevieweeID: reviewee2.ID,
		Date:       date,
	})
	require.Error(t, err)
	require.True(t, repository.IsUniqueViolation(err))

	// Neither can a reviewee be claimed by two reviewers.
	err = assignmentRepo.Create(ctx, &entity.Assignment{
		Base:       entity.Base{ID: uuid.NewString()},
		ReviewerID: reviewer2.ID,
		RevieweeID: reviewee1.ID,
		Date:       date,
	})
	require.Error(t, err)
	require.True(t, repository.IsUniqueViolation(err))

	// The same pairing on another day is fine.
	require.NoError(t, assignmentRepo.Create(ctx, &entity.Assignment{
		Base:       entity.Base{ID: uuid.NewString()},
		ReviewerID: reviewer1.ID,
		RevieweeID: reviewee1.ID,
		Date:       dateutil.Today(),
	}))

	assignment, err := assignmentRepo.GetByReviewer(ctx, reviewer1.ID, date)
	require.NoError(t, err)
	require.Equal(t, reviewee1.ID, assignment.RevieweeID)
}

func Test_IsUniqueViolation(t *testing.T) {
	require.False(t, repository.IsUniqueViolation(nil))
}

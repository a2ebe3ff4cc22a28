package domain

import (
	"testing"

	"github.com/lepetitglacon/moyenne-sub000/internal/domain/badge"
	"github.com/lepetitglacon/moyenne-sub000/internal/domain/statistic"
	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/testutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestEntryDomain() EntryDomain {
	entryRepo := repository.NewEntryRepository()
	ratingRepo := repository.NewRatingRepository()
	guessRepo := repository.NewGuessRepository()

	badgeManager := badge.NewManager(
		repository.NewBadgeRepository(),
		badge.NewParticipationScanner(entryRepo),
		badge.NewStreakScanner(entryRepo),
		badge.NewDetectiveScanner(guessRepo),
		badge.NewCriticScanner(ratingRepo),
		badge.NewPerfectDayScanner(entryRepo),
		badge.NewRoughDayScanner(entryRepo),
	)

	leaderboard := statistic.New(entryRepo, repository.NewUserRepository(), &testutil.MockRedisClient{})

	return NewEntryDomain(
		entryRepo,
		repository.NewAssignmentRepository(),
		ratingRepo,
		guessRepo,
		badgeManager,
		leaderboard,
	)
}

func Test_entryDomain_SaveEntry(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	user := testutil.SampleUser(ctx, nil)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	// Out-of-range ratings and unknown tags are rejected before anything is
	// written.
	_, err := entryDomain.SaveEntry(ctx, &model.SaveEntryRequest{Rating: 21})
	require.Error(t, err)

	_, err = entryDomain.SaveEntry(ctx, &model.SaveEntryRequest{Rating: -1})
	require.Error(t, err)

	_, err = entryDomain.SaveEntry(ctx, &model.SaveEntryRequest{Rating: 10, Tags: []string{"bitcoin"}})
	require.Error(t, err)

	_, err = entryDomain.SaveEntry(ctx, &model.SaveEntryRequest{Rating: 10, GifURL: "not a url"})
	require.Error(t, err)

	resp, err := entryDomain.SaveEntry(ctx, &model.SaveEntryRequest{
		Rating:  12,
		Comment: "long day at work",
		Tags:    []string{"work", "sleep"},
	})
	require.NoError(t, err)
	require.False(t, resp.IsUpdate)
	require.Contains(t, resp.NewBadges, "first_entry")

	// Saving again the same day overwrites the entry instead of adding one.
	resp, err = entryDomain.SaveEntry(ctx, &model.SaveEntryRequest{
		Rating:  15,
		Comment: "it got better",
		Tags:    []string{"work"},
	})
	require.NoError(t, err)
	require.True(t, resp.IsUpdate)
	require.Empty(t, resp.NewBadges)

	today, err := entryDomain.GetTodayEntry(ctx, &model.GetTodayEntryRequest{})
	require.NoError(t, err)
	require.True(t, today.Exists)
	require.Equal(t, 15, today.Rating)
	require.Equal(t, "it got better", today.Comment)
	require.Equal(t, []string{"work"}, today.Tags)
}

func Test_entryDomain_SaveEntry_extremeRatings(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	user := testutil.SampleUser(ctx, nil)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	resp, err := entryDomain.SaveEntry(ctx, &model.SaveEntryRequest{Rating: 0})
	require.NoError(t, err)
	require.Contains(t, resp.NewBadges, "rough_day")

	resp, err = entryDomain.SaveEntry(ctx, &model.SaveEntryRequest{Rating: 20})
	require.NoError(t, err)
	require.Contains(t, resp.NewBadges, "perfect_day")
}

func Test_entryDomain_GetTodayEntry_empty(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	user := testutil.SampleUser(ctx, nil)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	resp, err := entryDomain.GetTodayEntry(ctx, &model.GetTodayEntryRequest{})
	require.NoError(t, err)
	require.False(t, resp.Exists)
}

func Test_entryDomain_GetNextReview(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	reviewer := testutil.SampleUser(ctx, nil)
	reviewerCtx := xcontext.WithRequestUserID(ctx, reviewer.ID)

	yesterday := dateutil.Yesterday()
	testutil.SampleEntry(ctx, reviewer.ID, yesterday, 10)

	// The reviewer's own entry is the only one: nothing to review.
	resp, err := entryDomain.GetNextReview(reviewerCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.True(t, resp.Done)

	author := testutil.SampleUser(ctx, nil)
	testutil.SampleEntry(ctx, author.ID, yesterday, 14)

	resp, err = entryDomain.GetNextReview(reviewerCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.False(t, resp.Done)
	require.Equal(t, dateutil.Format(yesterday), resp.Date)
	require.Equal(t, "sample comment", resp.Comment)

	// Asking again returns the same assignment instead of creating a new
	// one.
	again, err := entryDomain.GetNextReview(reviewerCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.Equal(t, resp, again)

	// Another reviewer cannot be handed the same entry; with the author
	// already claimed, only the first reviewer's entry remains for them.
	other := testutil.SampleUser(ctx, nil)
	otherCtx := xcontext.WithRequestUserID(ctx, other.ID)

	otherResp, err := entryDomain.GetNextReview(otherCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.False(t, otherResp.Done)
	require.Equal(t, "sample comment", otherResp.Comment)

	assignmentRepo := repository.NewAssignmentRepository()
	first, err := assignmentRepo.GetByReviewer(ctx, reviewer.ID, yesterday)
	require.NoError(t, err)
	require.Equal(t, author.ID, first.RevieweeID)

	second, err := assignmentRepo.GetByReviewer(ctx, other.ID, yesterday)
	require.NoError(t, err)
	require.Equal(t, reviewer.ID, second.RevieweeID)
}

func Test_entryDomain_SaveRating(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	reviewer := testutil.SampleUser(ctx, nil)
	author := testutil.SampleUser(ctx, nil)
	reviewerCtx := xcontext.WithRequestUserID(ctx, reviewer.ID)

	yesterday := dateutil.Yesterday()
	testutil.SampleEntry(ctx, author.ID, yesterday, 11)

	// No assignment yet: the rating is refused.
	_, err := entryDomain.SaveRating(reviewerCtx, &model.SaveRatingRequest{
		ToUserID: author.ID,
		Date:     dateutil.Format(yesterday),
		Rating:   15,
	})
	require.Error(t, err)

	review, err := entryDomain.GetNextReview(reviewerCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.False(t, review.Done)

	// Only yesterday can be reviewed.
	_, err = entryDomain.SaveRating(reviewerCtx, &model.SaveRatingRequest{
		ToUserID: author.ID,
		Date:     dateutil.Format(dateutil.Today()),
		Rating:   15,
	})
	require.Error(t, err)

	// The target must be the assigned reviewee.
	_, err = entryDomain.SaveRating(reviewerCtx, &model.SaveRatingRequest{
		ToUserID: reviewer.ID,
		Date:     dateutil.Format(yesterday),
		Rating:   15,
	})
	require.Error(t, err)

	guessedRating := 12
	guessedUser := author.ID
	resp, err := entryDomain.SaveRating(reviewerCtx, &model.SaveRatingRequest{
		ToUserID:      author.ID,
		Date:          dateutil.Format(yesterday),
		Rating:        15,
		GuessedUserID: &guessedUser,
		GuessedRating: &guessedRating,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.GuessResult)
	require.True(t, resp.GuessResult.AuthorCorrect)

	// Guessed 12 against an actual 11: within tolerance but not exact.
	require.True(t, resp.GuessResult.RatingCorrect)
	require.False(t, resp.GuessResult.RatingExact)
	require.Equal(t, author.ID, resp.GuessResult.ActualUserID)
	require.Equal(t, 11, resp.GuessResult.ActualRating)

	// A second rating for the same day is refused.
	_, err = entryDomain.SaveRating(reviewerCtx, &model.SaveRatingRequest{
		ToUserID: author.ID,
		Date:     dateutil.Format(yesterday),
		Rating:   8,
	})
	require.Error(t, err)

	// The review queue reports done once the rating is in.
	review, err = entryDomain.GetNextReview(reviewerCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.True(t, review.Done)

	rating, err := repository.NewRatingRepository().GetByToUserAndDate(ctx, author.ID, yesterday)
	require.NoError(t, err)
	require.Equal(t, reviewer.ID, rating.FromUserID)
	require.Equal(t, 15, rating.Value)
}

func Test_entryDomain_SaveRating_wrongGuess(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	reviewer := testutil.SampleUser(ctx, nil)
	author := testutil.SampleUser(ctx, nil)
	stranger := testutil.SampleUser(ctx, nil)
	reviewerCtx := xcontext.WithRequestUserID(ctx, reviewer.ID)

	yesterday := dateutil.Yesterday()
	testutil.SampleEntry(ctx, author.ID, yesterday, 5)

	review, err := entryDomain.GetNextReview(reviewerCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.False(t, review.Done)

	guessedRating := 9
	guessedUser := stranger.ID
	resp, err := entryDomain.SaveRating(reviewerCtx, &model.SaveRatingRequest{
		ToUserID:      author.ID,
		Date:          dateutil.Format(yesterday),
		Rating:        10,
		GuessedUserID: &guessedUser,
		GuessedRating: &guessedRating,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.GuessResult)
	require.False(t, resp.GuessResult.AuthorCorrect)

	// Guessed 9 against an actual 5: off by more than the tolerance.
	require.False(t, resp.GuessResult.RatingCorrect)
	require.False(t, resp.GuessResult.RatingExact)
}

func Test_entryDomain_SaveRating_exactGuess(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	reviewer := testutil.SampleUser(ctx, nil)
	author := testutil.SampleUser(ctx, nil)
	reviewerCtx := xcontext.WithRequestUserID(ctx, reviewer.ID)

	yesterday := dateutil.Yesterday()
	testutil.SampleEntry(ctx, author.ID, yesterday, 7)

	review, err := entryDomain.GetNextReview(reviewerCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.False(t, review.Done)

	guessedRating := 7
	resp, err := entryDomain.SaveRating(reviewerCtx, &model.SaveRatingRequest{
		ToUserID:      author.ID,
		Date:          dateutil.Format(yesterday),
		Rating:        10,
		GuessedRating: &guessedRating,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.GuessResult)
	require.True(t, resp.GuessResult.RatingCorrect)
	require.True(t, resp.GuessResult.RatingExact)

	// No author guess was made, so no author credit either.
	require.False(t, resp.GuessResult.AuthorCorrect)
}

func Test_entryDomain_SaveRating_withoutGuess(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	reviewer := testutil.SampleUser(ctx, nil)
	author := testutil.SampleUser(ctx, nil)
	reviewerCtx := xcontext.WithRequestUserID(ctx, reviewer.ID)

	yesterday := dateutil.Yesterday()
	testutil.SampleEntry(ctx, author.ID, yesterday, 11)

	review, err := entryDomain.GetNextReview(reviewerCtx, &model.GetNextReviewRequest{})
	require.NoError(t, err)
	require.False(t, review.Done)

	resp, err := entryDomain.SaveRating(reviewerCtx, &model.SaveRatingRequest{
		ToUserID: author.ID,
		Date:     dateutil.Format(yesterday),
		Rating:   13,
	})
	require.NoError(t, err)
	require.Nil(t, resp.GuessResult)
}

func Test_entryDomain_GetStreak(t *testing.T) {
	ctx := testutil.MockContext()
	entryDomain := newTestEntryDomain()

	user := testutil.SampleUser(ctx, nil)
	userCtx := xcontext.WithRequestUserID(ctx, user.ID)

	resp, err := entryDomain.GetStreak(userCtx, &model.GetStreakRequest{})
	require.NoError(t, err)
	require.Zero(t, resp.CurrentStreak)
	require.Zero(t, resp.LongestStreak)

	// Two days in a row ending yesterday. The missing today does not break
	// the streak.
	yesterday := dateutil.Yesterday()
	testutil.SampleEntry(ctx, user.ID, dateutil.PrevDay(yesterday), 10)
	testutil.SampleEntry(ctx, user.ID, yesterday, 12)

	resp, err = entryDomain.GetStreak(userCtx, &model.GetStreakRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, resp.CurrentStreak)
	require.Equal(t, 2, resp.LongestStreak)
	require.Equal(t, dateutil.Format(yesterday), resp.LastEntryDate)

	testutil.SampleEntry(ctx, user.ID, dateutil.Today(), 14)

	resp, err = entryDomain.GetStreak(userCtx, &model.GetStreakRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.CurrentStreak)
	require.Equal(t, 3, resp.LongestStreak)
}

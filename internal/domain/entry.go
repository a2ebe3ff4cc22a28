package domain

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/lepetitglacon/moyenne-sub000/internal/domain/badge"
	"github.com/lepetitglacon/moyenne-sub000/internal/domain/statistic"
	"github.com/lepetitglacon/moyenne-sub000/internal/domain/streak"
	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
	"gorm.io/gorm"
)

// assignAttempts bounds how often GetNextReview re-picks a candidate after
// losing an insert race to another reviewer.
const assignAttempts = 2

type EntryDomain interface {
	SaveEntry(context.Context, *model.SaveEntryRequest) (*model.SaveEntryResponse, error)
	GetTodayEntry(context.Context, *model.GetTodayEntryRequest) (*model.GetTodayEntryResponse, error)
	GetNextReview(context.Context, *model.GetNextReviewRequest) (*model.GetNextReviewResponse, error)
	SaveRating(context.Context, *model.SaveRatingRequest) (*model.SaveRatingResponse, error)
	GetStreak(context.Context, *model.GetStreakRequest) (*model.GetStreakResponse, error)
}

type entryDomain struct {
	entryRepo      repository.EntryRepository
	assignmentRepo repository.AssignmentRepository
	ratingRepo     repository.RatingRepository
	guessRepo      repository.GuessRepository
	badgeManager   *badge.Manager
	leaderboard    statistic.Leaderboard
}

func NewEntryDomain(
	entryRepo repository.EntryRepository,
	assignmentRepo repository.AssignmentRepository,
	ratingRepo repository.RatingRepository,
	guessRepo repository.GuessRepository,
	badgeManager *badge.Manager,
	leaderboard statistic.Leaderboard,
) *entryDomain {
	return &entryDomain{
		entryRepo:      entryRepo,
		assignmentRepo: assignmentRepo,
		ratingRepo:     ratingRepo,
		guessRepo:      guessRepo,
		badgeManager:   badgeManager,
		leaderboard:    leaderboard,
	}
}

func (d *entryDomain) SaveEntry(
	ctx context.Context, req *model.SaveEntryRequest,
) (*model.SaveEntryResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	maxRating := xcontext.Configs(ctx).Journal.MaxRating
	if req.Rating < 0 || req.Rating > maxRating {
		return nil, errorx.New(errorx.BadRequest, "Rating must be between 0 and %d", maxRating)
	}

	tags, err := parseTags(req.Tags)
	if err != nil {
		return nil, err
	}

	if req.GifURL != "" {
		if _, err := url.ParseRequestURI(req.GifURL); err != nil {
			xcontext.Logger(ctx).Debugf("Invalid gif url: %v", err)
			return nil, errorx.New(errorx.BadRequest, "Invalid gif url")
		}
	}

	today := dateutil.Today()
	isUpdate, previousRating, err := d.entryRepo.Upsert(ctx, &entity.Entry{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  userID,
		Date:    today,
		Rating:  req.Rating,
		Comment: req.Comment,
		Tags:    tags,
		GifURL:  req.GifURL,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save entry: %v", err)
		return nil, errorx.Unknown
	}

	// The leaderboard is a cache rebuilt from the database on read, so a
	// failed increment only costs freshness.
	delta := int64(req.Rating - previousRating)
	if err := d.leaderboard.ChangeEntryLeaderboard(ctx, delta, today, userID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update entry leaderboard: %v", err)
	}

	newBadges, err := d.badgeManager.
		WithBadges(
			badge.ParticipationFamily,
			badge.StreakFamily,
			badge.PerfectDayFamily,
			badge.RoughDayFamily,
		).
		ScanAndGive(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.SaveEntryResponse{
		IsUpdate:  isUpdate,
		NewBadges: convertBadgeNames(newBadges),
	}, nil
}

func (d *entryDomain) GetTodayEntry(
	ctx context.Context, req *model.GetTodayEntryRequest,
) (*model.GetTodayEntryResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	entry, err := d.entryRepo.GetByUserAndDate(ctx, userID, dateutil.Today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.GetTodayEntryResponse{Exists: false}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get today entry: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetTodayEntryResponse{
		Exists:  true,
		Rating:  entry.Rating,
		Comment: entry.Comment,
		Tags:    convertTags(entry.Tags),
		GifURL:  entry.GifURL,
	}, nil
}

// GetNextReview drives the assignment state machine for the calling user.
// "Nothing left to review" is a normal outcome reported with Done, never an
// error. Races on assignment creation are resolved by the storage
// uniqueness constraints and retried here, invisibly to the caller.
func (d *entryDomain) GetNextReview(
	ctx context.Context, req *model.GetNextReviewRequest,
) (*model.GetNextReviewResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	date := dateutil.Yesterday()

	_, err := d.ratingRepo.GetByFromUserAndDate(ctx, userID, date)
	if err == nil {
		return &model.GetNextReviewResponse{Done: true}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get rating: %v", err)
		return nil, errorx.Unknown
	}

	assignment, err := d.assignmentRepo.GetByReviewer(ctx, userID, date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get assignment: %v", err)
			return nil, errorx.Unknown
		}

		assignment, err = d.assign(ctx, userID, date)
		if err != nil {
			return nil, err
		}

		if assignment == nil {
			return &model.GetNextReviewResponse{Done: true}, nil
		}
	}

	entry, err := d.entryRepo.GetByUserAndDate(ctx, assignment.RevieweeID, date)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get assigned entry: %v", err)
		return nil, errorx.Unknown
	}

	// The reviewee's identity and rating stay hidden, the rest of the
	// entry serves as guessing material.
	return &model.GetNextReviewResponse{
		Date:    dateutil.Format(entry.Date),
		Comment: entry.Comment,
		Tags:    convertTags(entry.Tags),
		GifURL:  entry.GifURL,
	}, nil
}

// assign picks a random unreviewed entry of the date and records the
// assignment. A nil assignment with nil error means the candidate pool is
// empty.
func (d *entryDomain) assign(
	ctx context.Context, userID int64, date time.Time,
) (*entity.Assignment, error) {
	for attempt := 0; attempt < assignAttempts; attempt++ {
		candidate, err := d.entryRepo.PickUnassigned(ctx, date, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}

			xcontext.Logger(ctx).Errorf("Cannot pick an entry to review: %v", err)
			return nil, errorx.Unknown
		}

		assignment := &entity.Assignment{
			Base:       entity.Base{ID: uuid.NewString()},
			ReviewerID: userID,
			RevieweeID: candidate.UserID,
			Date:       date,
		}

		err = d.assignmentRepo.Create(ctx, assignment)
		if err == nil {
			return assignment, nil
		}

		if !repository.IsUniqueViolation(err) {
			xcontext.Logger(ctx).Errorf("Cannot create assignment: %v", err)
			return nil, errorx.Unknown
		}

		// Lost a race. Either a concurrent call assigned us already, in
		// which case that assignment wins, or another reviewer took the
		// candidate and we pick a new one.
		existing, err := d.assignmentRepo.GetByReviewer(ctx, userID, date)
		if err == nil {
			return existing, nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot re-read assignment: %v", err)
			return nil, errorx.Unknown
		}
	}

	return nil, errorx.New(errorx.Unavailable, "Too much contention, please retry")
}

func (d *entryDomain) SaveRating(
	ctx context.Context, req *model.SaveRatingRequest,
) (*model.SaveRatingResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	date, err := dateutil.Parse(req.Date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date %s", req.Date)
	}

	if !dateutil.SameDay(date, dateutil.Yesterday()) {
		return nil, errorx.New(errorx.BadRequest, "Only yesterday's entries can be reviewed")
	}

	maxRating := xcontext.Configs(ctx).Journal.MaxRating
	if req.Rating < 0 || req.Rating > maxRating {
		return nil, errorx.New(errorx.BadRequest, "Rating must be between 0 and %d", maxRating)
	}

	if req.GuessedRating != nil && (*req.GuessedRating < 0 || *req.GuessedRating > maxRating) {
		return nil, errorx.New(errorx.BadRequest, "Guessed rating must be between 0 and %d", maxRating)
	}

	_, err = d.ratingRepo.GetByFromUserAndDate(ctx, userID, date)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You have already reviewed for this date")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get rating: %v", err)
		return nil, errorx.Unknown
	}

	assignment, err := d.assignmentRepo.GetByReviewer(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.BadRequest, "You have no assigned entry for this date")
		}

		xcontext.Logger(ctx).Errorf("Cannot get assignment: %v", err)
		return nil, errorx.Unknown
	}

	if req.ToUserID != assignment.RevieweeID {
		return nil, errorx.New(errorx.BadRequest, "This entry was not assigned to you")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.ratingRepo.Create(ctx, &entity.Rating{
		Base:       entity.Base{ID: uuid.NewString()},
		FromUserID: userID,
		ToUserID:   assignment.RevieweeID,
		Date:       date,
		Value:      req.Rating,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errorx.New(errorx.AlreadyExists, "You have already reviewed for this date")
		}

		xcontext.Logger(ctx).Errorf("Cannot create rating: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	// The guess rides along as best-effort enrichment. Whatever happens to
	// it, the rating above stays committed.
	var guessResult *model.GuessResult
	if req.GuessedUserID != nil || req.GuessedRating != nil {
		guessResult = d.saveGuess(ctx, userID, assignment, req)
	}

	newBadges, err := d.badgeManager.
		WithBadges(badge.CriticFamily, badge.DetectiveFamily).
		ScanAndGive(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.SaveRatingResponse{
		NewBadges:   convertBadgeNames(newBadges),
		GuessResult: guessResult,
	}, nil
}

// saveGuess evaluates and persists the reviewer's guess. It never fails the
// request: on any error the guess is dropped with a log line and the caller
// simply gets no guess result.
func (d *entryDomain) saveGuess(
	ctx context.Context, userID int64, assignment *entity.Assignment, req *model.SaveRatingRequest,
) *model.GuessResult {
	if _, err := d.guessRepo.GetByGuesserAndDate(ctx, userID, assignment.Date); err == nil {
		xcontext.Logger(ctx).Debugf("User %d already guessed on %s", userID, req.Date)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Warnf("Cannot check existing guess: %v", err)
		return nil
	}

	actual, err := d.entryRepo.GetByUserAndDate(ctx, assignment.RevieweeID, assignment.Date)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get reviewed entry for guess: %v", err)
		return nil
	}

	tolerance := xcontext.Configs(ctx).Journal.GuessTolerance
	guess := &entity.Guess{
		Base:      entity.Base{ID: uuid.NewString()},
		GuesserID: userID,
		Date:      assignment.Date,
	}

	if req.GuessedUserID != nil {
		guess.GuessedUserID = sql.NullInt64{Valid: true, Int64: *req.GuessedUserID}
		guess.AuthorCorrect = *req.GuessedUserID == assignment.RevieweeID
	}

	if req.GuessedRating != nil {
		guess.GuessedRating = sql.NullInt64{Valid: true, Int64: int64(*req.GuessedRating)}
		distance := *req.GuessedRating - actual.Rating
		if distance < 0 {
			distance = -distance
		}

		guess.RatingCorrect = distance <= tolerance
		guess.RatingExact = distance == 0
	}

	if err := d.guessRepo.Create(ctx, guess); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot save guess: %v", err)
		return nil
	}

	return &model.GuessResult{
		AuthorCorrect: guess.AuthorCorrect,
		RatingCorrect: guess.RatingCorrect,
		RatingExact:   guess.RatingExact,
		ActualUserID:  assignment.RevieweeID,
		ActualRating:  actual.Rating,
	}
}

func (d *entryDomain) GetStreak(
	ctx context.Context, req *model.GetStreakRequest,
) (*model.GetStreakResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	dates, err := d.entryRepo.GetDatesByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get entry dates: %v", err)
		return nil, errorx.Unknown
	}

	result := streak.Calculate(dates, dateutil.Today())

	resp := &model.GetStreakResponse{
		CurrentStreak: result.Current,
		LongestStreak: result.Longest,
	}

	if !result.LastDate.IsZero() {
		resp.LastEntryDate = dateutil.Format(result.LastDate)
	}

	return resp, nil
}

package statistic

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type Leaderboard interface {
	GetLeaderBoard(ctx context.Context, period string, offset, limit int) ([]model.UserStatistic, error)
	GetRank(ctx context.Context, userID int64, period string) (uint64, error)

	// ChangeEntryLeaderboard shifts a user's cumulative points after an
	// entry of the given date was written or rewritten.
	ChangeEntryLeaderboard(ctx context.Context, delta int64, date time.Time, userID int64) error
}

type leaderboard struct {
	entryRepo   repository.EntryRepository
	userRepo    repository.UserRepository
	redisClient xredis.Client
}

func New(
	entryRepo repository.EntryRepository,
	userRepo repository.UserRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{
		entryRepo:   entryRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

func redisKeyLeaderBoard(period string, t time.Time) (string, error) {
	value, err := dateutil.PeriodValue(period, t)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("leaderboard:rating:%s", value), nil
}

func (l *leaderboard) GetLeaderBoard(
	ctx context.Context, period string, offset, limit int,
) ([]model.UserStatistic, error) {
	key, err := redisKeyLeaderBoard(period, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid leaderboard period: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid period")
	}

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return nil, errorx.Unknown
	}

	// The sorted set is a cache. If it is missing, rebuild it from the
	// database before reading.
	if !ok {
		if err := l.loadFromDB(ctx, period, key); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := make([]int64, 0, len(results))
	for _, z := range results {
		id, err := strconv.ParseInt(z.Member.(string), 10, 64)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Invalid leaderboard member %v: %v", z.Member, err)
			return nil, errorx.Unknown
		}

		userIDs = append(userIDs, id)
	}

	users, err := l.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard users: %v", err)
		return nil, errorx.Unknown
	}

	names := map[int64]string{}
	for _, u := range users {
		names[u.ID] = u.Name
	}

	statistics := []model.UserStatistic{}
	for i, z := range results {
		statistics = append(statistics, model.UserStatistic{
			UserID:   userIDs[i],
			UserName: names[userIDs[i]],
			Points:   int64(z.Score),
		})
	}

	return statistics, nil
}

func (l *leaderboard) GetRank(ctx context.Context, userID int64, period string) (uint64, error) {
	key, err := redisKeyLeaderBoard(period, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid leaderboard period: %v", err)
		return 0, errorx.New(errorx.BadRequest, "Invalid period")
	}

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return 0, errorx.Unknown
	}

	if !ok {
		if err := l.loadFromDB(ctx, period, key); err != nil {
			return 0, err
		}
	}

	rank, err := l.redisClient.ZRevRank(ctx, key, strconv.FormatInt(userID, 10))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrank redis: %v", err)
		return 0, errorx.Unknown
	}

	return rank, nil
}

func (l *leaderboard) ChangeEntryLeaderboard(
	ctx context.Context, delta int64, date time.Time, userID int64,
) error {
	if delta == 0 {
		return nil
	}

	member := strconv.FormatInt(userID, 10)
	for _, period := range []string{"week", "month", "total"} {
		key, err := redisKeyLeaderBoard(period, date)
		if err != nil {
			return err
		}

		// Only touch existing sets. Missing ones are rebuilt from the
		// database on first read anyway.
		ok, err := l.redisClient.Exist(ctx, key)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		if err := l.redisClient.ZIncrBy(ctx, key, delta, member); err != nil {
			return err
		}
	}

	return nil
}

func (l *leaderboard) loadFromDB(ctx context.Context, period, key string) error {
	start, end, err := dateutil.PeriodRange(period, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid leaderboard period: %v", err)
		return errorx.New(errorx.BadRequest, "Invalid period")
	}

	totals, err := l.entryRepo.GetRatingTotals(ctx, start, end)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load rating totals: %v", err)
		return errorx.Unknown
	}

	for _, t := range totals {
		err := l.redisClient.ZAdd(ctx, key, redis.Z{
			Score:  float64(t.Total),
			Member: strconv.FormatInt(t.UserID, 10),
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot set redis leaderboard: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}

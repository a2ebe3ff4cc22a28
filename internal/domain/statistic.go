package domain

import (
	"context"
	"time"

	"github.com/lepetitglacon/moyenne-sub000/internal/domain/statistic"
	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
	"github.com/lepetitglacon/moyenne-sub000/pkg/numberutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

type StatisticDomain interface {
	GetDailySummary(context.Context, *model.GetDailySummaryRequest) (*model.GetDailySummaryResponse, error)
	GetMonthlyAverage(context.Context, *model.GetMonthlyAverageRequest) (*model.GetMonthlyAverageResponse, error)
	GetLeaderBoard(context.Context, *model.GetLeaderBoardRequest) (*model.GetLeaderBoardResponse, error)
	GetRank(context.Context, *model.GetRankRequest) (*model.GetRankResponse, error)
}

type statisticDomain struct {
	entryRepo   repository.EntryRepository
	leaderboard statistic.Leaderboard
}

func NewStatisticDomain(
	entryRepo repository.EntryRepository,
	leaderboard statistic.Leaderboard,
) *statisticDomain {
	return &statisticDomain{entryRepo: entryRepo, leaderboard: leaderboard}
}

// GetDailySummary returns the day's entries with author names, best rating
// first. This is the read surface the bot adapter renders every evening,
// identities included: the day is over and ratings are public by then.
func (d *statisticDomain) GetDailySummary(
	ctx context.Context, req *model.GetDailySummaryRequest,
) (*model.GetDailySummaryResponse, error) {
	date, err := dateutil.Parse(req.Date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date %s", req.Date)
	}

	entries, err := d.entryRepo.GetByDate(ctx, date)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get entries of %s: %v", req.Date, err)
		return nil, errorx.Unknown
	}

	dailyEntries := []model.DailyEntry{}
	ratings := []int{}
	for _, e := range entries {
		dailyEntries = append(dailyEntries, model.DailyEntry{
			UserID:   e.UserID,
			UserName: e.User.Name,
			Rating:   e.Rating,
			Comment:  e.Comment,
			Tags:     convertTags(e.Tags),
		})
		ratings = append(ratings, e.Rating)
	}

	return &model.GetDailySummaryResponse{
		Date:    dateutil.Format(date),
		Entries: dailyEntries,
		Average: numberutil.Average(ratings),
	}, nil
}

func (d *statisticDomain) GetMonthlyAverage(
	ctx context.Context, req *model.GetMonthlyAverageRequest,
) (*model.GetMonthlyAverageResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, errorx.New(errorx.BadRequest, "Invalid month %d", req.Month)
	}

	start, end := dateutil.MonthRange(req.Year, time.Month(req.Month))
	entries, err := d.entryRepo.GetByUserAndRange(ctx, xcontext.RequestUserID(ctx), start, end)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get entries of month: %v", err)
		return nil, errorx.Unknown
	}

	ratings := make([]int, len(entries))
	for i, e := range entries {
		ratings[i] = e.Rating
	}

	return &model.GetMonthlyAverageResponse{
		Average: numberutil.Average(ratings),
		Count:   len(entries),
	}, nil
}

func (d *statisticDomain) GetLeaderBoard(
	ctx context.Context, req *model.GetLeaderBoardRequest,
) (*model.GetLeaderBoardResponse, error) {
	if req.Limit == 0 {
		req.Limit = 10
	}

	if req.Limit < 0 || req.Limit > 50 {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	data, err := d.leaderboard.GetLeaderBoard(ctx, req.Period, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	return &model.GetLeaderBoardResponse{Data: data}, nil
}

func (d *statisticDomain) GetRank(
	ctx context.Context, req *model.GetRankRequest,
) (*model.GetRankResponse, error) {
	rank, err := d.leaderboard.GetRank(ctx, xcontext.RequestUserID(ctx), req.Period)
	if err != nil {
		return nil, err
	}

	return &model.GetRankResponse{Rank: rank}, nil
}

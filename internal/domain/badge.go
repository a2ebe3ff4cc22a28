package domain

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/domain/badge"
	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

type BadgeDomain interface {
	GetMyBadges(context.Context, *model.GetMyBadgesRequest) (*model.GetMyBadgesResponse, error)
	GetUserBadges(context.Context, *model.GetUserBadgesRequest) (*model.GetUserBadgesResponse, error)
	GetBadgeProgress(context.Context, *model.GetBadgeProgressRequest) (*model.GetBadgeProgressResponse, error)
}

type badgeDomain struct {
	badgeRepo    repository.BadgeRepository
	badgeManager *badge.Manager
}

func NewBadgeDomain(
	badgeRepo repository.BadgeRepository,
	badgeManager *badge.Manager,
) *badgeDomain {
	return &badgeDomain{badgeRepo: badgeRepo, badgeManager: badgeManager}
}

func (d *badgeDomain) GetMyBadges(
	ctx context.Context, req *model.GetMyBadgesRequest,
) (*model.GetMyBadgesResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	badges, err := d.badgeRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get badges: %v", err)
		return nil, errorx.Unknown
	}

	clientBadges := []model.Badge{}
	needUpdate := false
	for _, b := range badges {
		clientBadges = append(clientBadges, convertBadge(&b))
		if !b.WasNotified {
			needUpdate = true
		}
	}

	if needUpdate {
		if err := d.badgeRepo.UpdateNotification(ctx, userID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update badge notification: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.GetMyBadgesResponse{Badges: clientBadges}, nil
}

func (d *badgeDomain) GetUserBadges(
	ctx context.Context, req *model.GetUserBadgesRequest,
) (*model.GetUserBadgesResponse, error) {
	badges, err := d.badgeRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get badges: %v", err)
		return nil, errorx.Unknown
	}

	clientBadges := []model.Badge{}
	for _, b := range badges {
		clientBadges = append(clientBadges, convertBadge(&b))
	}

	return &model.GetUserBadgesResponse{Badges: clientBadges}, nil
}

func (d *badgeDomain) GetBadgeProgress(
	ctx context.Context, req *model.GetBadgeProgressRequest,
) (*model.GetBadgeProgressResponse, error) {
	progress, err := d.badgeManager.Progress(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	return &model.GetBadgeProgressResponse{Progress: progress}, nil
}

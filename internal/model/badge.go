package model

import "time"

type Badge struct {
	Name        string         `json:"name"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	WasNotified bool           `json:"was_notified"`
	CreatedAt   time.Time      `json:"created_at"`
}

type GetMyBadgesRequest struct{}

type GetMyBadgesResponse struct {
	Badges []Badge `json:"badges"`
}

type GetUserBadgesRequest struct {
	UserID int64 `json:"user_id" form:"user_id"`
}

type GetUserBadgesResponse struct {
	Badges []Badge `json:"badges"`
}

type BadgeProgress struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Current   int    `json:"current"`
	Earned    bool   `json:"earned"`
}

type GetBadgeProgressRequest struct{}

type GetBadgeProgressResponse struct {
	Progress []BadgeProgress `json:"progress"`
}

package model

type DailyEntry struct {
	UserID   int64    `json:"user_id"`
	UserName string   `json:"user_name"`
	Rating   int      `json:"rating"`
	Comment  string   `json:"comment,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type GetDailySummaryRequest struct {
	Date string `json:"date" form:"date"`
}

type GetDailySummaryResponse struct {
	Date    string       `json:"date"`
	Entries []DailyEntry `json:"entries"`
	Average float64      `json:"average"`
}

type GetMonthlyAverageRequest struct {
	Year  int `json:"year" form:"year"`
	Month int `json:"month" form:"month"`
}

type GetMonthlyAverageResponse struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type UserStatistic struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Points   int64  `json:"points"`
}

type GetLeaderBoardRequest struct {
	Period string `json:"period" form:"period"`
	Offset int    `json:"offset" form:"offset"`
	Limit  int    `json:"limit" form:"limit"`
}

type GetLeaderBoardResponse struct {
	Data []UserStatistic `json:"data"`
}

type GetRankRequest struct {
	Period string `json:"period" form:"period"`
}

type GetRankResponse struct {
	Rank uint64 `json:"rank"`
}

package model

type SaveEntryRequest struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Tags    []string `json:"tags"`
	GifURL  string   `json:"gif_url"`
}

type SaveEntryResponse struct {
	IsUpdate  bool     `json:"is_update"`
	NewBadges []string `json:"new_badges"`
}

type GetTodayEntryRequest struct{}

type GetTodayEntryResponse struct {
	Exists  bool     `json:"exists"`
	Rating  int      `json:"rating,omitempty"`
	Comment string   `json:"comment,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	GifURL  string   `json:"gif_url,omitempty"`
}

type GetNextReviewRequest struct{}

// GetNextReviewResponse deliberately carries neither the reviewee's
// identity nor their rating. Comment, tags and gif are the guessing hints.
type GetNextReviewResponse struct {
	Done    bool     `json:"done"`
	Date    string   `json:"date,omitempty"`
	Comment string   `json:"comment,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	GifURL  string   `json:"gif_url,omitempty"`
}

type SaveRatingRequest struct {
	ToUserID      int64  `json:"to_user_id"`
	Date          string `json:"date"`
	Rating        int    `json:"rating"`
	GuessedUserID *int64 `json:"guessed_user_id,omitempty"`
	GuessedRating *int   `json:"guessed_rating,omitempty"`
}

type GuessResult struct {
	AuthorCorrect bool  `json:"author_correct"`
	RatingCorrect bool  `json:"rating_correct"`
	RatingExact   bool  `json:"rating_exact"`
	ActualUserID  int64 `json:"actual_user_id"`
	ActualRating  int   `json:"actual_rating"`
}

type SaveRatingResponse struct {
	NewBadges   []string     `json:"new_badges"`
	GuessResult *GuessResult `json:"guess_result,omitempty"`
}

type GetStreakRequest struct{}

type GetStreakResponse struct {
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	LastEntryDate string `json:"last_entry_date,omitempty"`
}

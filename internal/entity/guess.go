package entity

import (
	"database/sql"
	"time"
)

// Guess records who the reviewer thought wrote the entry they reviewed
// and/or which rating its author gave themselves. Correctness flags are
// computed once, at write time, against the real entry.
type Guess struct {
	Base
	GuesserID int64     `gorm:"uniqueIndex:idx_guesses_guesser_date"`
	Guesser   User      `gorm:"foreignKey:GuesserID"`
	Date      time.Time `gorm:"uniqueIndex:idx_guesses_guesser_date"`

	GuessedUserID sql.NullInt64
	GuessedRating sql.NullInt64

	AuthorCorrect bool
	RatingCorrect bool
	RatingExact   bool
}

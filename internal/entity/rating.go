package entity

import "time"

// Rating is a reviewer's assessment of the entry assigned to them. One per
// (from_user, date), insert-only.
type Rating struct {
	Base
	FromUserID int64     `gorm:"uniqueIndex:idx_ratings_from_date"`
	FromUser   User      `gorm:"foreignKey:FromUserID"`
	ToUserID   int64     `gorm:"index"`
	ToUser     User      `gorm:"foreignKey:ToUserID"`
	Date       time.Time `gorm:"uniqueIndex:idx_ratings_from_date"`
	Value      int
}

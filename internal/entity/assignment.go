package entity

import "time"

// Assignment pairs a reviewer with the entry author they review for one
// day. The two unique indexes are what make the matching exclusive: a
// reviewer appears at most once per day, and so does a reviewee. Rows are
// never updated or deleted once created.
type Assignment struct {
	Base
	ReviewerID int64     `gorm:"uniqueIndex:idx_assignments_reviewer_date"`
	Reviewer   User      `gorm:"foreignKey:ReviewerID"`
	RevieweeID int64     `gorm:"uniqueIndex:idx_assignments_reviewee_date"`
	Reviewee   User      `gorm:"foreignKey:RevieweeID"`
	Date       time.Time `gorm:"uniqueIndex:idx_assignments_reviewer_date;uniqueIndex:idx_assignments_reviewee_date"`
}

package entity

import "time"

type User struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

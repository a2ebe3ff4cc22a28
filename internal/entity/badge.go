package entity

import (
	"time"

	"github.com/lepetitglacon/moyenne-sub000/pkg/enum"
)

type BadgeName string

var (
	BadgeFirstEntry = enum.New(BadgeName("first_entry"))
	BadgeEntries30  = enum.New(BadgeName("entries_30"))
	BadgeEntries100 = enum.New(BadgeName("entries_100"))

	BadgeStreak3   = enum.New(BadgeName("streak_3"))
	BadgeStreak7   = enum.New(BadgeName("streak_7"))
	BadgeStreak30  = enum.New(BadgeName("streak_30"))
	BadgeStreak100 = enum.New(BadgeName("streak_100"))

	BadgeDetective3  = enum.New(BadgeName("detective_3"))
	BadgeDetective7  = enum.New(BadgeName("detective_7"))
	BadgeDetective30 = enum.New(BadgeName("detective_30"))

	BadgeCritic10  = enum.New(BadgeName("critic_10"))
	BadgeCritic50  = enum.New(BadgeName("critic_50"))
	BadgeCritic100 = enum.New(BadgeName("critic_100"))

	BadgePerfectDay = enum.New(BadgeName("perfect_day"))
	BadgeRoughDay   = enum.New(BadgeName("rough_day"))
)

// Badge is an awarded achievement. The composite primary key is the
// idempotence guarantee: awarding the same badge twice hits the key and the
// second insert is dropped.
type Badge struct {
	UserID      int64     `gorm:"primaryKey"`
	User        User      `gorm:"foreignKey:UserID"`
	Name        BadgeName `gorm:"primaryKey;size:32"`
	Metadata    Map
	WasNotified bool
	CreatedAt   time.Time
}

package entity

import (
	"time"

	"github.com/lepetitglacon/moyenne-sub000/pkg/enum"
)

type TagType string

var (
	TagWork    = enum.New(TagType("work"))
	TagLove    = enum.New(TagType("love"))
	TagHealth  = enum.New(TagType("health"))
	TagFamily  = enum.New(TagType("family"))
	TagFriends = enum.New(TagType("friends"))
	TagSport   = enum.New(TagType("sport"))
	TagFood    = enum.New(TagType("food"))
	TagSleep   = enum.New(TagType("sleep"))
	TagOther   = enum.New(TagType("other"))
)

// Entry is a user's daily self-rating. There is at most one row per
// (user, date); re-submitting the same day overwrites it.
type Entry struct {
	Base
	UserID int64     `gorm:"uniqueIndex:idx_entries_user_date"`
	User   User      `gorm:"foreignKey:UserID"`
	Date   time.Time `gorm:"uniqueIndex:idx_entries_user_date"`

	Rating  int
	Comment string `gorm:"size:1024"`
	Tags    Array[TagType]
	GifURL  string `gorm:"size:512"`
}

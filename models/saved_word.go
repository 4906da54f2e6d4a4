package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedWord là idiom user bookmark để ôn lại. Key (user_id, idiom_id),
// lưu lại bản copy nội dung idiom tại thời điểm save.
type SavedWord struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	IdiomID int       `gorm:"primaryKey" json:"idiom_id"`

	Idiom    string `gorm:"type:text;not null" json:"idiom"`
	Meaning  string `gorm:"type:text;not null" json:"meaning"`
	Example  string `gorm:"type:text" json:"example"`
	Category string `gorm:"size:50" json:"category"`

	SavedAt      time.Time `gorm:"autoCreateTime" json:"saved_at"`
	SavedAtLocal string    `gorm:"size:40" json:"saved_at_local"`

	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

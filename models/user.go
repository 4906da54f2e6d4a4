package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"   // Quản trị hệ thống & dữ liệu idiom
	RoleStudent UserRole = "student" // Người học
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName  string     `gorm:"size:150;not null" json:"full_name"`
	Email     string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	Role      UserRole   `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	AvatarURL string     `gorm:"type:text" json:"avatar_url"`
	Status    *bool      `gorm:"default:true" json:"status"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	Progress   []SessionProgress `json:"progress,omitempty"`
	SavedWords []SavedWord       `json:"saved_words,omitempty"`
}

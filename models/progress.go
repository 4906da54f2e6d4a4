package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionProgress là kết quả mới nhất của 1 user cho 1 session.
// Làm lại session -> ghi đè toàn bộ (xóa record cũ + answers cũ), không merge.
type SessionProgress struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_session" json:"user_id"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	SessionID int `gorm:"not null;uniqueIndex:idx_user_session" json:"session_id"`
	Score     int `gorm:"not null" json:"score"`

	// CompletedAt do server gán (authoritative), CompletedAtLocal do client
	// gửi lên để hiển thị ngay khi chưa round-trip xong
	CompletedAt      time.Time `gorm:"not null" json:"completed_at"`
	CompletedAtLocal string    `gorm:"size:40" json:"completed_at_local"`

	Answers []SessionAnswer `gorm:"foreignKey:ProgressID" json:"answers"`
}

// SessionAnswer là 1 câu trả lời trong lần làm session, giữ thứ tự bằng Position
type SessionAnswer struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	ProgressID uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Progress   SessionProgress `gorm:"foreignKey:ProgressID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`

	Position       int    `gorm:"not null" json:"-"`
	QuestionID     int    `gorm:"not null" json:"question_id"`
	SelectedAnswer string `gorm:"type:text" json:"selected_answer"`
	CorrectAnswer  string `gorm:"type:text" json:"correct_answer"`
	IsCorrect      bool   `gorm:"not null" json:"is_correct"`
}

// OverallStats tổng hợp tiến độ trên toàn bộ session
type OverallStats struct {
	TotalSessions        int `json:"total_sessions"`
	CompletedSessions    int `json:"completed_sessions"`
	CompletionPercentage int `json:"completion_percentage"`
	AverageScore         int `json:"average_score"`
	TotalScore           int `json:"total_score"`
	TotalQuestions       int `json:"total_questions"`
}

// CategoryStat tiến độ theo từng category
type CategoryStat struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vnkhanh/idiom-learning-backend/models"
	"github.com/vnkhanh/idiom-learning-backend/services"
	"github.com/vnkhanh/idiom-learning-backend/ws"
)

type AnswerInput struct {
	QuestionID     int    `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer" binding:"required"`
}

type SaveProgressInput struct {
	Answers          []AnswerInput `json:"answers" binding:"required"`
	CompletedAtLocal string        `json:"completed_at_local"`
}

// loadProgressMap gom toàn bộ tiến độ của user thành map key "session_<id>",
// cùng key scheme với document store cũ
func loadProgressMap(db *gorm.DB, userID uuid.UUID) (map[string]models.SessionProgress, error) {
	var records []models.SessionProgress
	err := db.
		Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	progress := make(map[string]models.SessionProgress, len(records))
	for _, r := range records {
		progress[services.SessionKey(r.SessionID)] = r
	}
	return progress, nil
}

// Lưu kết quả 1 session. Làm lại session -> ghi đè toàn bộ record cũ
// trong 1 transaction, không merge. 2 tab cùng nộp -> last-write-wins.
// POST /api/user/progress/sessions/:id
func SaveSessionProgress(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id không hợp lệ"})
		return
	}

	var input SaveProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có câu trả lời nào"})
		return
	}

	// Số câu trả lời phải khớp số idiom của session
	var idiomCount int64
	if err := db.Model(&models.Idiom{}).Where("session = ?", sessionID).Count(&idiomCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể kiểm tra session"})
		return
	}
	if idiomCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session không tồn tại"})
		return
	}
	if int64(len(input.Answers)) != idiomCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Số câu trả lời không khớp với session"})
		return
	}

	// Server tự chấm lại: is_correct = selected == correct
	now := time.Now()
	score := 0
	answers := make([]models.SessionAnswer, 0, len(input.Answers))
	for i, a := range input.Answers {
		isCorrect := a.SelectedAnswer == a.CorrectAnswer
		if isCorrect {
			score++
		}
		answers = append(answers, models.SessionAnswer{
			Position:       i,
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			CorrectAnswer:  a.CorrectAnswer,
			IsCorrect:      isCorrect,
		})
	}

	progress := models.SessionProgress{
		UserID:           userUUID,
		SessionID:        sessionID,
		Score:            score,
		CompletedAt:      now,
		CompletedAtLocal: input.CompletedAtLocal,
		Answers:          answers,
	}

	// Full replace trong 1 transaction
	tx := db.Begin()

	var old models.SessionProgress
	err = tx.Where("user_id = ? AND session_id = ?", userUUID, sessionID).First(&old).Error
	if err == nil {
		if err := tx.Where("progress_id = ?", old.ID).Delete(&models.SessionAnswer{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa kết quả cũ"})
			return
		}
		if err := tx.Delete(&old).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa kết quả cũ"})
			return
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể kiểm tra tiến độ cũ"})
		return
	}

	if err := tx.Create(&progress).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu tiến độ"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu tiến độ"})
		return
	}

	// Báo các tab khác của user refresh dashboard
	ws.SendProgressUpdate(userIDStr, sessionID, score)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Lưu tiến độ thành công",
		"progress": progress,
	})
}

// Tiến độ 1 session. Chưa hoàn thành không phải lỗi.
// GET /api/user/progress/sessions/:id
func GetSessionProgress(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id không hợp lệ"})
		return
	}

	progress, err := loadProgressMap(db, userUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn tiến độ"})
		return
	}

	record, ok := services.SessionProgressFor(progress, sessionID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"completed":  false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"completed":  true,
		"progress":   record,
	})
}

// Toàn bộ map tiến độ của user, key "session_<id>".
// GET /api/user/progress
func GetAllProgress(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	progress, err := loadProgressMap(db, userUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn tiến độ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"progress": progress,
		"total":    len(progress),
	})
}

// Thống kê tổng hợp cho dashboard.
// GET /api/user/progress/stats
func GetOverallStats(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	progress, err := loadProgressMap(db, userUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn tiến độ"})
		return
	}

	stats := services.OverallStats(progress, services.TotalSessions)
	c.JSON(http.StatusOK, stats)
}

// Tiến độ theo category.
// GET /api/user/progress/categories
func GetCategoryProgress(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var idioms []models.Idiom
	if err := db.Order("id ASC").Find(&idioms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn idioms"})
		return
	}

	progress, err := loadProgressMap(db, userUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn tiến độ"})
		return
	}

	stats := services.CategoryProgress(progress, idioms, models.Categories())

	// Giữ thứ tự category cố định + kèm slug cho client route
	result := make([]gin.H, 0, len(stats))
	for _, name := range models.Categories() {
		s := stats[name]
		result = append(result, gin.H{
			"category":   name,
			"slug":       slug.Make(name),
			"total":      s.Total,
			"completed":  s.Completed,
			"percentage": s.Percentage,
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": result})
}

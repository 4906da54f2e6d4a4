package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/idiom-learning-backend/models"
)

// Bookmark 1 idiom để ôn lại. Save lại idiom đã có -> thay bản cũ, không nhân đôi.
// POST /api/user/saved-words/:idiom_id
func SaveWord(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	idiomID, err := strconv.Atoi(c.Param("idiom_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idiom_id không hợp lệ"})
		return
	}

	var body struct {
		SavedAtLocal string `json:"saved_at_local"`
	}
	// Body optional, bỏ qua lỗi bind
	_ = c.ShouldBindJSON(&body)

	var idiom models.Idiom
	if err := db.First(&idiom, "id = ?", idiomID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy idiom"})
		return
	}

	// Copy nội dung idiom tại thời điểm save
	saved := models.SavedWord{
		UserID:       userID,
		IdiomID:      idiom.ID,
		Idiom:        idiom.Idiom,
		Meaning:      idiom.Meaning,
		Example:      idiom.Example,
		Category:     idiom.Category,
		SavedAtLocal: body.SavedAtLocal,
	}

	tx := db.Begin()

	// Upsert theo (user_id, idiom_id): xóa bản cũ nếu có rồi ghi bản mới
	if err := tx.Where("user_id = ? AND idiom_id = ?", userID, idiomID).
		Delete(&models.SavedWord{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save word"})
		return
	}
	if err := tx.Create(&saved).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save word"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save word"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Đã lưu từ",
		"saved_word": saved,
	})
}

// Bỏ lưu. Xóa trên DB thành công mới coi là xong.
// DELETE /api/user/saved-words/:idiom_id
func RemoveSavedWord(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	idiomID, err := strconv.Atoi(c.Param("idiom_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idiom_id không hợp lệ"})
		return
	}

	result := db.Where("user_id = ? AND idiom_id = ?", userID, idiomID).
		Delete(&models.SavedWord{})

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove saved word"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Saved word not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã bỏ lưu từ"})
}

// Kiểm tra idiom đã được lưu chưa
// GET /api/user/saved-words/:idiom_id/check
func CheckSavedWord(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	idiomID, err := strconv.Atoi(c.Param("idiom_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idiom_id không hợp lệ"})
		return
	}

	var saved models.SavedWord
	if err := db.Where("user_id = ? AND idiom_id = ?", userID, idiomID).First(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"is_saved": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check saved word"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_saved": true})
}

// Danh sách từ đã lưu, mới nhất trước
// GET /api/user/saved-words
func GetSavedWords(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var savedWords []models.SavedWord
	if err := db.Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&savedWords).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved words"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved_words": savedWords,
		"total":       len(savedWords),
	})
}

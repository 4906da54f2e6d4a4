package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/idiom-learning-backend/models"
	"github.com/vnkhanh/idiom-learning-backend/utils"
)

// Thông tin tài khoản hiện tại
// GET /api/user/me
func GetMe(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	var user models.User
	if err := db.First(&user, "id = ?", userIDStr).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateMeInput struct {
	FullName string `json:"full_name" binding:"required"`
}

// Đổi tên hiển thị
// PUT /api/user/me
func UpdateMe(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	var input UpdateMeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userIDStr).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	if err := db.Model(&user).Update("full_name", input.FullName).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật tên"})
		return
	}
	user.FullName = input.FullName

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"message": "Cập nhật thành công",
		"user":    user,
	})
}

// Upload avatar lên Supabase Storage, xóa avatar cũ nếu có
// POST /api/user/me/avatar
func UploadAvatar(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	var user models.User
	if err := db.First(&user, "id = ?", userIDStr).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file avatar"})
		return
	}

	fileID := uuid.New().String()
	publicURL, err := utils.UploadImageToSupabase(fileHeader, fileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload avatar thất bại"})
		return
	}

	oldURL := user.AvatarURL
	if err := db.Model(&user).Update("avatar_url", publicURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu avatar"})
		return
	}

	// Xóa file cũ, lỗi thì bỏ qua
	if oldURL != "" {
		_ = utils.DeleteFileFromSupabase(oldURL)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Đổi avatar thành công",
		"avatar_url": publicURL,
	})
}

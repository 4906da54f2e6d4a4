package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnkhanh/idiom-learning-backend/config"
	"github.com/vnkhanh/idiom-learning-backend/models"
	"github.com/vnkhanh/idiom-learning-backend/services"
)

// Toàn bộ dataset cho client cache 1 lần lúc mount.
// GET /api/idioms
func GetIdioms(c *gin.Context) {
	var idioms []models.Idiom
	if err := config.DB.Order("id ASC").Find(&idioms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn idioms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"idioms": idioms,
		"total":  len(idioms),
	})
}

// Danh sách category cố định kèm slug cho route phía client.
// GET /api/idioms/categories
func GetIdiomCategories(c *gin.Context) {
	categories := make([]gin.H, 0)
	for _, name := range models.Categories() {
		categories = append(categories, gin.H{
			"name": name,
			"slug": slug.Make(name),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ==== ADMIN: QUẢN LÝ DATASET ====

type IdiomInput struct {
	ID       int    `json:"id" binding:"required"`
	Idiom    string `json:"idiom" binding:"required"`
	Meaning  string `json:"meaning" binding:"required"`
	Example  string `json:"example"`
	Category string `json:"category" binding:"required"`
	Session  int    `json:"session" binding:"required,min=1"`
}

func CreateIdiom(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input IdiomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Idiom
	if err := db.First(&existing, "id = ?", input.ID).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Idiom id đã tồn tại"})
		return
	}

	idiom := models.Idiom{
		ID:       input.ID,
		Idiom:    input.Idiom,
		Meaning:  input.Meaning,
		Example:  input.Example,
		Category: input.Category,
		Session:  input.Session,
	}
	if err := db.Create(&idiom).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo idiom"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo idiom thành công",
		"idiom":   idiom,
	})
}

func UpdateIdiom(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idiom id không hợp lệ"})
		return
	}

	var idiom models.Idiom
	if err := db.First(&idiom, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy idiom"})
		return
	}

	var input struct {
		Idiom    string `json:"idiom"`
		Meaning  string `json:"meaning"`
		Example  string `json:"example"`
		Category string `json:"category"`
		Session  int    `json:"session"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Idiom != "" {
		idiom.Idiom = input.Idiom
	}
	if input.Meaning != "" {
		idiom.Meaning = input.Meaning
	}
	if input.Example != "" {
		idiom.Example = input.Example
	}
	if input.Category != "" {
		idiom.Category = input.Category
	}
	if input.Session > 0 {
		idiom.Session = input.Session
	}

	if err := db.Save(&idiom).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật idiom"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cập nhật idiom thành công",
		"idiom":   idiom,
	})
}

func DeleteIdiom(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idiom id không hợp lệ"})
		return
	}

	result := db.Delete(&models.Idiom{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa idiom"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy idiom"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa idiom"})
}

// Nhờ Gemini viết lại câu ví dụ cho idiom.
// POST /api/admin/idioms/:id/example
func RegenerateIdiomExample(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idiom id không hợp lệ"})
		return
	}

	var idiom models.Idiom
	if err := db.First(&idiom, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy idiom"})
		return
	}

	example, err := services.GenerateIdiomExample(idiom.Idiom, idiom.Meaning)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini không sinh được câu ví dụ"})
		return
	}

	if err := db.Model(&idiom).Update("example", example).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu câu ví dụ"})
		return
	}
	idiom.Example = example

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã sinh câu ví dụ mới",
		"idiom":   idiom,
	})
}

// Upload file idioms.json thay thế dataset, upsert theo id.
// POST /api/admin/idioms/import
func ImportIdioms(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file dataset"})
		return
	}

	// Lưu tạm rồi dùng chung validate với seed lúc khởi động
	tmpPath := filepath.Join(os.TempDir(), "idioms-import.json")
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không lưu được file upload"})
		return
	}
	defer os.Remove(tmpPath)

	idioms, err := config.LoadIdiomDataset(tmpPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&idioms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không ghi được dataset vào DB"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Import dataset thành công",
		"total":   len(idioms),
	})
}

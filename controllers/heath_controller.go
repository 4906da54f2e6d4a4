package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/idiom-learning-backend/config"
	"github.com/vnkhanh/idiom-learning-backend/models"
	"github.com/vnkhanh/idiom-learning-backend/ws"
)

func HealthCheck(c *gin.Context) {
	db := config.DB

	// Mặc định trạng thái OK
	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"db":        "ok",
		"websocket": gin.H{
			"enabled": true,
			"stats":   ws.H.GetStats(),
		},
	}

	// Thử ping database
	sqlDB, err := db.DB()
	if err != nil {
		response["db"] = "error: cannot get DB instance"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		response["db"] = "error: cannot connect to DB"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	// Dataset idiom phải được seed xong thì app mới dùng được
	var idiomCount int64
	if err := db.Model(&models.Idiom{}).Count(&idiomCount).Error; err != nil {
		response["idioms"] = "error: cannot count idioms"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	response["idioms"] = idiomCount
	if idiomCount == 0 {
		response["status"] = "degraded"
	}

	c.JSON(http.StatusOK, response)
}

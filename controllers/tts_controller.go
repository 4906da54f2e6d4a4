package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/idiom-learning-backend/services"
)

type TTSRequest struct {
	Text         string  `json:"text" binding:"required"`
	Voice        string  `json:"voice"`
	SpeakingRate float64 `json:"speaking_rate"`
}

// Đọc idiom/câu ví dụ cho nút audio trên client
func TextToSpeechHandler(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	audioContent, err := services.SynthesizeSpeech(req.Text, req.Voice, req.SpeakingRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Tính thời lượng để client hiển thị trạng thái đang đọc
	duration, err := services.MP3Duration(audioContent)
	if err != nil {
		duration = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"voice_used":    req.Voice,
		"audio_content": base64.StdEncoding.EncodeToString(audioContent),
		"duration_sec":  duration,
		"message":       "Text converted to speech successfully",
	})
}

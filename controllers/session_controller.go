package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/idiom-learning-backend/config"
	"github.com/vnkhanh/idiom-learning-backend/models"
	"github.com/vnkhanh/idiom-learning-backend/services"
)

type SessionSummary struct {
	SessionID  int    `json:"session_id"`
	Category   string `json:"category"`
	IdiomCount int    `json:"idiom_count"`
	Completed  bool   `json:"completed"`
	Score      *int   `json:"score,omitempty"`
}

// Danh sách session cho dashboard. Có token -> kèm trạng thái hoàn thành.
// GET /api/sessions
func GetSessions(c *gin.Context) {
	var idioms []models.Idiom
	if err := config.DB.Order("id ASC").Find(&idioms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn idioms"})
		return
	}

	// Gom theo session, giữ thứ tự tăng dần
	summaries := make([]*SessionSummary, 0, services.TotalSessions)
	bySession := make(map[int]*SessionSummary)
	for _, idiom := range idioms {
		s, ok := bySession[idiom.Session]
		if !ok {
			s = &SessionSummary{SessionID: idiom.Session, Category: idiom.Category}
			bySession[idiom.Session] = s
			summaries = append(summaries, s)
		}
		s.IdiomCount++
	}

	// User đăng nhập (OptionalAuthMiddleware) -> đánh dấu session đã xong
	if userID := c.GetString("user_id"); userID != "" {
		var progress []models.SessionProgress
		if err := config.DB.Where("user_id = ?", userID).Find(&progress).Error; err == nil {
			scoreBySession := make(map[int]int, len(progress))
			for _, p := range progress {
				scoreBySession[p.SessionID] = p.Score
			}
			for _, s := range summaries {
				if score, ok := scoreBySession[s.SessionID]; ok {
					s.Completed = true
					sc := score
					s.Score = &sc
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": summaries,
		"total":    len(summaries),
	})
}

// Idioms của 1 session, giữ thứ tự dataset.
// GET /api/sessions/:id/idioms
func GetSessionIdioms(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id không hợp lệ"})
		return
	}

	var idioms []models.Idiom
	if err := config.DB.Order("id ASC").Find(&idioms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn idioms"})
		return
	}

	sessionIdioms := services.SessionIdioms(idioms, sessionID)

	// Session không tồn tại -> danh sách rỗng, client tự redirect
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"idioms":     sessionIdioms,
		"total":      len(sessionIdioms),
	})
}

// Sinh bộ câu hỏi trắc nghiệm cho 1 session. Pool đáp án nhiễu là cả dataset.
// GET /api/sessions/:id/questions
func GetSessionQuestions(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id không hợp lệ"})
		return
	}

	var idioms []models.Idiom
	if err := config.DB.Order("id ASC").Find(&idioms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn idioms"})
		return
	}

	sessionIdioms := services.SessionIdioms(idioms, sessionID)
	questions := services.GenerateSessionQuestions(sessionIdioms, idioms)

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"questions":  questions,
		"total":      len(questions),
	})
}

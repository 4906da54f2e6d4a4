package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func progressRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setCtx := func(c *gin.Context) {
		c.Set("db", db)
		c.Set("user_id", userID)
	}
	r.POST("/progress/sessions/:id", setCtx, SaveSessionProgress)
	return r
}

// Commit thất bại -> 500, không được báo "lưu thành công"
func TestSaveSessionProgress_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	r := progressRouter(db, uuid.New().String())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "idioms"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectBegin()
	// Chưa có record cũ
	mock.ExpectQuery(`SELECT (.+) FROM "session_progresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "session_progresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectQuery(`INSERT INTO "session_answers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(uuid.New().String()).
			AddRow(uuid.New().String()))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	body := `{"answers":[
		{"question_id":1,"selected_answer":"to start a conversation","correct_answer":"to start a conversation"},
		{"question_id":2,"selected_answer":"to study hard","correct_answer":"to be very expensive"}
	]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/progress/sessions/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSessionProgress_AnswerCountMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	r := progressRouter(db, uuid.New().String())

	// Session có 20 idiom nhưng client chỉ nộp 1 câu
	mock.ExpectQuery(`SELECT count\(\*\) FROM "idioms"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(20))

	body := `{"answers":[{"question_id":1,"selected_answer":"a","correct_answer":"a"}]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/progress/sessions/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vnkhanh/idiom-learning-backend/config"
)

func TestHealthCheck(t *testing.T) {
	db, mock := newMockDB(t)
	config.DB = db

	mock.ExpectQuery(`SELECT count\(\*\) FROM "idioms"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(300))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"idioms":300`)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_EmptyDataset(t *testing.T) {
	db, mock := newMockDB(t)
	config.DB = db

	mock.ExpectQuery(`SELECT count\(\*\) FROM "idioms"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	// Chưa seed idiom nào -> app chưa dùng được
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

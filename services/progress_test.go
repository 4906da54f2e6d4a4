package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/idiom-learning-backend/models"
)

func answersOf(n int, correct int) []models.SessionAnswer {
	answers := make([]models.SessionAnswer, 0, n)
	for i := 0; i < n; i++ {
		answers = append(answers, models.SessionAnswer{
			Position:   i,
			QuestionID: i + 1,
			IsCorrect:  i < correct,
		})
	}
	return answers
}

func TestSessionKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "session_1", SessionKey(1))
	assert.Equal(t, "session_15", SessionKey(15))
}

func TestSessionProgressFor(t *testing.T) {
	t.Parallel()

	progress := map[string]models.SessionProgress{
		"session_3": {SessionID: 3, Score: 17},
	}

	record, ok := SessionProgressFor(progress, 3)
	require.True(t, ok)
	assert.Equal(t, 17, record.Score)

	// Session chưa làm -> absent, không phải lỗi
	_, ok = SessionProgressFor(progress, 99)
	assert.False(t, ok)
}

func TestOverallStats_Empty(t *testing.T) {
	t.Parallel()

	stats := OverallStats(map[string]models.SessionProgress{}, TotalSessions)

	assert.Equal(t, models.OverallStats{
		TotalSessions:        15,
		CompletedSessions:    0,
		CompletionPercentage: 0,
		AverageScore:         0,
		TotalScore:           0,
		TotalQuestions:       0,
	}, stats)
}

func TestOverallStats_SingleSession(t *testing.T) {
	t.Parallel()

	progress := map[string]models.SessionProgress{
		"session_1": {SessionID: 1, Score: 18, Answers: answersOf(20, 18)},
	}

	stats := OverallStats(progress, TotalSessions)

	assert.Equal(t, 1, stats.CompletedSessions)
	assert.Equal(t, 7, stats.CompletionPercentage) // round(1/15*100)
	assert.Equal(t, 90, stats.AverageScore)        // round(18/20*100)
	assert.Equal(t, 18, stats.TotalScore)
	assert.Equal(t, 20, stats.TotalQuestions)
}

func TestOverallStats_MissingAnswersFallback(t *testing.T) {
	t.Parallel()

	// Record cũ không có answers -> coi như 20 câu
	progress := map[string]models.SessionProgress{
		"session_2": {SessionID: 2, Score: 10},
	}

	stats := OverallStats(progress, TotalSessions)

	assert.Equal(t, 20, stats.TotalQuestions)
	assert.Equal(t, 50, stats.AverageScore)
}

func TestOverallStats_Idempotent(t *testing.T) {
	t.Parallel()

	progress := map[string]models.SessionProgress{
		"session_1": {SessionID: 1, Score: 18, Answers: answersOf(20, 18)},
		"session_5": {SessionID: 5, Score: 12, Answers: answersOf(20, 12)},
	}

	first := OverallStats(progress, TotalSessions)
	second := OverallStats(progress, TotalSessions)

	assert.Equal(t, first, second)
	assert.Len(t, progress, 2)
}

func TestCategoryProgress(t *testing.T) {
	t.Parallel()

	idioms := []models.Idiom{
		{ID: 1, Meaning: "m1", Category: models.CategoryDailyConversation, Session: 1},
		{ID: 2, Meaning: "m2", Category: models.CategoryDailyConversation, Session: 1},
		{ID: 3, Meaning: "m3", Category: models.CategoryDailyConversation, Session: 2},
		{ID: 4, Meaning: "m4", Category: models.CategoryBusiness, Session: 3},
	}

	progress := map[string]models.SessionProgress{
		"session_1": {SessionID: 1, Score: 20},
	}

	stats := CategoryProgress(progress, idioms, models.Categories())

	daily := stats[models.CategoryDailyConversation]
	assert.Equal(t, 2, daily.Total)
	assert.Equal(t, 1, daily.Completed)
	assert.Equal(t, 50, daily.Percentage)

	business := stats[models.CategoryBusiness]
	assert.Equal(t, 1, business.Total)
	assert.Equal(t, 0, business.Completed)
	assert.Equal(t, 0, business.Percentage)

	// Category không có idiom nào -> 0/0/0, không chia cho 0
	academic := stats[models.CategoryAcademic]
	assert.Equal(t, models.CategoryStat{Total: 0, Completed: 0, Percentage: 0}, academic)
}

func TestSessionIdioms(t *testing.T) {
	t.Parallel()

	idioms := []models.Idiom{
		{ID: 1, Session: 1},
		{ID: 2, Session: 2},
		{ID: 3, Session: 1},
		{ID: 4, Session: 1},
	}

	result := SessionIdioms(idioms, 1)

	require.Len(t, result, 3)
	// Giữ nguyên thứ tự dataset
	assert.Equal(t, []int{1, 3, 4}, []int{result[0].ID, result[1].ID, result[2].ID})

	assert.Empty(t, SessionIdioms(idioms, 99))
}

package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/idiom-learning-backend/models"
)

func testIdioms(n int) []models.Idiom {
	idioms := make([]models.Idiom, 0, n)
	for i := 1; i <= n; i++ {
		session := (i-1)/QuestionsPerSession + 1
		idioms = append(idioms, models.Idiom{
			ID:       i,
			Idiom:    fmt.Sprintf("idiom %d", i),
			Meaning:  fmt.Sprintf("meaning %d", i),
			Example:  fmt.Sprintf("example %d", i),
			Category: models.CategoryDailyConversation,
			Session:  session,
		})
	}
	return idioms
}

func TestGenerateQuizQuestion(t *testing.T) {
	t.Parallel()

	idioms := testIdioms(10)
	meanings := make(map[string]bool, len(idioms))
	for _, i := range idioms {
		meanings[i.Meaning] = true
	}

	for _, target := range idioms {
		q := GenerateQuizQuestion(target, idioms)

		require.Len(t, q.Options, 4)
		assert.Equal(t, target.Meaning, q.CorrectAnswer)

		correctCount := 0
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			assert.True(t, meanings[opt], "option phải là meaning trong dataset: %s", opt)
			assert.False(t, seen[opt], "option bị trùng: %s", opt)
			seen[opt] = true
			if opt == q.CorrectAnswer {
				correctCount++
			}
		}
		assert.Equal(t, 1, correctCount, "đáp án đúng phải xuất hiện đúng 1 lần")
	}
}

func TestGenerateQuizQuestion_SmallPool(t *testing.T) {
	t.Parallel()

	// Pool nhiễu chỉ có 2 idiom khác -> 3 option, không chèn thêm
	idioms := testIdioms(3)
	q := GenerateQuizQuestion(idioms[0], idioms)

	require.Len(t, q.Options, 3)
	assert.Contains(t, q.Options, idioms[0].Meaning)
}

func TestGenerateQuizQuestion_DistractorsExcludeTarget(t *testing.T) {
	t.Parallel()

	idioms := testIdioms(10)
	target := idioms[4]

	// Lặp nhiều lần để chắc random không bao giờ lấy nhầm meaning của chính idiom
	for i := 0; i < 100; i++ {
		q := GenerateQuizQuestion(target, idioms)
		count := 0
		for _, opt := range q.Options {
			if opt == target.Meaning {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestGenerateSessionQuestions(t *testing.T) {
	t.Parallel()

	idioms := testIdioms(60) // 3 session
	sessionIdioms := SessionIdioms(idioms, 2)
	require.Len(t, sessionIdioms, QuestionsPerSession)

	questions := GenerateSessionQuestions(sessionIdioms, idioms)

	require.Len(t, questions, len(sessionIdioms))
	for i, q := range questions {
		// Giữ đúng thứ tự idiom của session
		assert.Equal(t, sessionIdioms[i].ID, q.Idiom.ID)
		assert.Equal(t, sessionIdioms[i].Meaning, q.CorrectAnswer)
		assert.Len(t, q.Options, 4)
	}
}

func TestGenerateSessionQuestions_EmptySession(t *testing.T) {
	t.Parallel()

	idioms := testIdioms(40)
	questions := GenerateSessionQuestions(SessionIdioms(idioms, 99), idioms)

	assert.Empty(t, questions)
}

package services

import (
	"fmt"
	"math"

	"github.com/vnkhanh/idiom-learning-backend/models"
)

const (
	// TotalSessions số session cố định của bộ dữ liệu
	TotalSessions = 15
	// QuestionsPerSession dùng làm fallback khi record cũ thiếu answers
	QuestionsPerSession = 20
)

// SessionKey sinh key dạng "session_<id>" cho map tiến độ,
// trùng với key document cũ trên Firestore
func SessionKey(sessionID int) string {
	return fmt.Sprintf("session_%d", sessionID)
}

// SessionProgressFor tra tiến độ của 1 session, trả về (record, true) nếu có.
// Session chưa hoàn thành không phải lỗi.
func SessionProgressFor(progress map[string]models.SessionProgress, sessionID int) (models.SessionProgress, bool) {
	p, ok := progress[SessionKey(sessionID)]
	return p, ok
}

// OverallStats tổng hợp điểm và tỷ lệ hoàn thành trên toàn bộ session
func OverallStats(progress map[string]models.SessionProgress, totalSessions int) models.OverallStats {
	completed := len(progress)

	completionPercentage := 0
	if totalSessions > 0 {
		completionPercentage = roundPercent(completed, totalSessions)
	}

	totalScore := 0
	totalQuestions := 0
	for _, session := range progress {
		totalScore += session.Score
		if len(session.Answers) > 0 {
			totalQuestions += len(session.Answers)
		} else {
			// Record cũ không có answers -> coi như đủ 20 câu
			totalQuestions += QuestionsPerSession
		}
	}

	averageScore := 0
	if totalQuestions > 0 {
		averageScore = roundPercent(totalScore, totalQuestions)
	}

	return models.OverallStats{
		TotalSessions:        totalSessions,
		CompletedSessions:    completed,
		CompletionPercentage: completionPercentage,
		AverageScore:         averageScore,
		TotalScore:           totalScore,
		TotalQuestions:       totalQuestions,
	}
}

// CategoryProgress tính tiến độ theo từng category trong danh sách cố định.
// Category không có session nào -> 0/0/0, không chia cho 0.
func CategoryProgress(progress map[string]models.SessionProgress, idioms []models.Idiom, categories []string) map[string]models.CategoryStat {
	stats := make(map[string]models.CategoryStat, len(categories))

	for _, category := range categories {
		seen := make(map[int]bool)
		sessionIDs := make([]int, 0)
		for _, idiom := range idioms {
			if idiom.Category != category || seen[idiom.Session] {
				continue
			}
			seen[idiom.Session] = true
			sessionIDs = append(sessionIDs, idiom.Session)
		}

		completed := 0
		for _, id := range sessionIDs {
			if _, ok := progress[SessionKey(id)]; ok {
				completed++
			}
		}

		percentage := 0
		if len(sessionIDs) > 0 {
			percentage = roundPercent(completed, len(sessionIDs))
		}

		stats[category] = models.CategoryStat{
			Total:      len(sessionIDs),
			Completed:  completed,
			Percentage: percentage,
		}
	}

	return stats
}

// SessionIdioms lọc idiom thuộc 1 session, giữ thứ tự dataset.
// Session không tồn tại -> slice rỗng, caller tự redirect.
func SessionIdioms(idioms []models.Idiom, sessionID int) []models.Idiom {
	result := make([]models.Idiom, 0)
	for _, idiom := range idioms {
		if idiom.Session == sessionID {
			result = append(result, idiom)
		}
	}
	return result
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

package services

import (
	"math/rand"

	"github.com/vnkhanh/idiom-learning-backend/models"
)

// GenerateQuizQuestion tạo 1 câu trắc nghiệm cho idiom: đáp án đúng là
// meaning của idiom, 3 đáp án nhiễu lấy ngẫu nhiên từ các idiom khác.
// Nếu pool nhiễu < 3 thì trả về ít hơn 4 option, không chèn thêm.
func GenerateQuizQuestion(idiom models.Idiom, allIdioms []models.Idiom) models.Question {
	correct := idiom.Meaning

	// Pool đáp án nhiễu: mọi idiom khác (so theo id)
	others := make([]models.Idiom, 0, len(allIdioms))
	for _, i := range allIdioms {
		if i.ID != idiom.ID {
			others = append(others, i)
		}
	}

	rand.Shuffle(len(others), func(a, b int) {
		others[a], others[b] = others[b], others[a]
	})

	n := 3
	if len(others) < n {
		n = len(others)
	}

	options := make([]string, 0, n+1)
	options = append(options, correct)
	for _, o := range others[:n] {
		options = append(options, o.Meaning)
	}

	// Xáo vị trí để đáp án đúng không luôn đứng đầu
	rand.Shuffle(len(options), func(a, b int) {
		options[a], options[b] = options[b], options[a]
	})

	return models.Question{
		Idiom:         idiom,
		Options:       options,
		CorrectAnswer: correct,
	}
}

// GenerateSessionQuestions tạo câu hỏi cho toàn bộ idiom của 1 session,
// giữ nguyên thứ tự. Pool nhiễu là cả dataset chứ không giới hạn trong session.
func GenerateSessionQuestions(sessionIdioms []models.Idiom, allIdioms []models.Idiom) []models.Question {
	questions := make([]models.Question, 0, len(sessionIdioms))
	for _, idiom := range sessionIdioms {
		questions = append(questions, GenerateQuizQuestion(idiom, allIdioms))
	}
	return questions
}

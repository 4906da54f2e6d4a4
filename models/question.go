package models

// Question là câu hỏi trắc nghiệm sinh ra từ 1 idiom, không lưu DB.
// Options gồm 1 đáp án đúng + 3 đáp án nhiễu, đã xáo thứ tự.
type Question struct {
	Idiom         Idiom    `json:"idiom"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

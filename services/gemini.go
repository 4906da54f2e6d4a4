package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerateText gửi prompt tới Gemini và trả về text kết quả
func GeminiGenerateText(prompt string) (string, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		return "", fmt.Errorf("không thể tạo Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("lỗi Gemini xử lý: %v", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini không trả kết quả hợp lệ")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// GenerateIdiomExample nhờ Gemini viết lại câu ví dụ cho 1 idiom
func GenerateIdiomExample(idiom string, meaning string) (string, error) {
	prompt := fmt.Sprintf(`You are helping build an English idiom learning app.
Write ONE natural example sentence (10-20 words) using the idiom "%s" (meaning: %s).
Return only the sentence, no quotes, no explanation.`, idiom, meaning)

	raw, err := GeminiGenerateText(prompt)
	if err != nil {
		return "", err
	}

	// Gemini đôi khi trả kèm dấu nháy hoặc xuống dòng thừa
	example := strings.TrimSpace(raw)
	example = strings.Trim(example, `"`)
	if example == "" {
		return "", fmt.Errorf("gemini trả về câu ví dụ rỗng")
	}
	return example, nil
}

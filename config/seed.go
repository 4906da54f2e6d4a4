package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnkhanh/idiom-learning-backend/models"
)

type idiomDataset struct {
	Idioms []models.Idiom `json:"idioms"`
}

// LoadIdiomDataset đọc và validate file idioms.json
func LoadIdiomDataset(path string) ([]models.Idiom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("không đọc được file dataset: %w", err)
	}

	var dataset idiomDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("dataset không phải JSON hợp lệ: %w", err)
	}

	if len(dataset.Idioms) == 0 {
		return nil, fmt.Errorf("dataset rỗng: %s", path)
	}

	// id phải unique trên toàn bộ dataset
	seen := make(map[int]bool, len(dataset.Idioms))
	for _, idiom := range dataset.Idioms {
		if idiom.ID <= 0 {
			return nil, fmt.Errorf("idiom %q có id không hợp lệ: %d", idiom.Idiom, idiom.ID)
		}
		if seen[idiom.ID] {
			return nil, fmt.Errorf("id bị trùng trong dataset: %d", idiom.ID)
		}
		seen[idiom.ID] = true
		if idiom.Idiom == "" || idiom.Meaning == "" {
			return nil, fmt.Errorf("idiom id=%d thiếu idiom/meaning", idiom.ID)
		}
		if idiom.Session <= 0 {
			return nil, fmt.Errorf("idiom id=%d thiếu session", idiom.ID)
		}
	}

	return dataset.Idioms, nil
}

// SeedIdioms nạp dataset tĩnh vào bảng idioms lúc khởi động.
// Upsert theo id để lần deploy sau cập nhật được nội dung đã sửa.
func SeedIdioms(db *gorm.DB) {
	path := os.Getenv("IDIOM_DATA_PATH")
	if path == "" {
		path = "data/idioms.json"
	}

	idioms, err := LoadIdiomDataset(path)
	if err != nil {
		log.Fatal("seed idiom dataset lỗi: ", err)
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&idioms).Error; err != nil {
		log.Fatal("không ghi được idiom dataset vào DB: ", err)
	}

	log.Printf("Đã seed %d idioms từ %s", len(idioms), path)
}

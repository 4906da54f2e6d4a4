package models

// Các category cố định của bộ dữ liệu idiom
const (
	CategoryDailyConversation = "Daily Conversation"
	CategoryBusiness          = "Business"
	CategoryAcademic          = "Academic"
)

// Categories trả về danh sách category theo đúng thứ tự hiển thị
func Categories() []string {
	return []string{
		CategoryDailyConversation,
		CategoryBusiness,
		CategoryAcademic,
	}
}

// Idiom là 1 mục trong bộ dữ liệu tĩnh, seed từ data/idioms.json.
// ID lấy nguyên từ dataset, không tự sinh.
type Idiom struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Idiom    string `gorm:"type:text;not null" json:"idiom"`
	Meaning  string `gorm:"type:text;not null" json:"meaning"`
	Example  string `gorm:"type:text" json:"example"`
	Category string `gorm:"size:50;not null;index" json:"category"`
	Session  int    `gorm:"not null;index" json:"session"`
}

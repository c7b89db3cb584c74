package models

import "gorm.io/gorm"

// Quiz is a dialect quiz in the general catalog. Module courses reference
// their quiz by id.
type Quiz struct {
	gorm.Model
	Title       string     `gorm:"not null" json:"title"`
	Language    string     `gorm:"default:''" json:"language"`
	Description string     `gorm:"default:''" json:"description"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	Questions   []Question `json:"questions,omitempty"`
}

type Question struct {
	gorm.Model
	QuizID      uint     `gorm:"index;not null" json:"quiz_id"`
	Prompt      string   `gorm:"not null" json:"prompt"`
	Explanation string   `gorm:"default:''" json:"explanation"`
	OrderIndex  int      `gorm:"default:0" json:"order_index"`
	Options     []Option `json:"options,omitempty"`
}

type Option struct {
	gorm.Model
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	Text       string `gorm:"not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"is_correct"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
}

package models

import "gorm.io/gorm"

// CourseModule is one dialect track on the modules page. Static catalog,
// seeded once at startup and ordered by id.
type CourseModule struct {
	gorm.Model
	Title   string `gorm:"not null" json:"title"`
	Dialect string `gorm:"default:''" json:"dialect"`
	Summary string `gorm:"default:''" json:"summary"`
}

// Course pairs one handout PDF with exactly one quiz inside a module.
type Course struct {
	gorm.Model
	ModuleID        uint   `gorm:"index;not null" json:"module_id"`
	Title           string `gorm:"not null" json:"title"`
	OrderIndex      int    `gorm:"default:0" json:"order_index"`
	BookFile        string `gorm:"size:255;not null" json:"book_file"`
	BookDisplayName string `json:"book_display_name"`
	HandoutLabel    string `json:"handout_label"`
	PageRange       string `json:"page_range"`
	QuizID          uint   `gorm:"index;not null" json:"quiz_id"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`
}

package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Firstname string `gorm:"not null" json:"firstname"`
	Lastname  string `gorm:"default:''" json:"lastname"`
	StudentID string `gorm:"unique;not null" json:"student_id"`
	Year      string `gorm:"default:''" json:"year"`
	Gender    string `gorm:"default:''" json:"gender"`
	Email     string `gorm:"unique;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Verified  bool   `gorm:"default:false" json:"verified"`
	Role      string `gorm:"default:'USER'" json:"role"` // USER, ADMIN
}

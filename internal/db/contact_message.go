package db

import "gorm.io/gorm"

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:200;not null"`
	Message string `gorm:"type:text;not null"`
	Read    bool   `gorm:"default:false"`
}

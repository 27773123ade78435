package db

import "gorm.io/gorm"

// Page is a standalone long-form page such as About or Now.
type Page struct {
	gorm.Model
	Slug            string `gorm:"size:50;uniqueIndex;not null"`
	Title           string `gorm:"size:200;not null"`
	Content         string `gorm:"type:text"`
	MetaDescription string `gorm:"size:300"`
}

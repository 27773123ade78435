package db

import "gorm.io/gorm"

// Category groups posts into broad topics.
type Category struct {
	gorm.Model
	Name        string `gorm:"size:100;unique;not null"`
	Slug        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"size:300"`
	Posts       []Post `gorm:"many2many:post_categories;"`
}

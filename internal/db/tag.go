package db

import "gorm.io/gorm"

// Tag labels posts. Name and Slug are both unique.
type Tag struct {
	gorm.Model
	Name  string `gorm:"size:50;unique;not null"`
	Slug  string `gorm:"size:50;uniqueIndex;not null"`
	Posts []Post `gorm:"many2many:post_tags;"`
}

package db

import "gorm.io/gorm"

// Post is a blog entry. Content is markdown; Excerpt is the plain-text
// listing teaser, auto-filled from Content when left blank.
type Post struct {
	gorm.Model
	Title      string     `gorm:"size:200;not null"`
	Slug       string     `gorm:"size:200;uniqueIndex;not null"`
	Content    string     `gorm:"type:text"`
	Excerpt    string     `gorm:"size:500"`
	Published  bool       `gorm:"default:false;index"`
	Tags       []Tag      `gorm:"many2many:post_tags;"`
	Categories []Category `gorm:"many2many:post_categories;"`
	Comments   []Comment
}

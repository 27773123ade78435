package db

import "gorm.io/gorm"

// Comment is a reader comment on a post, hidden until approved.
type Comment struct {
	gorm.Model
	PostID      uint   `gorm:"index;not null"`
	Post        Post
	AuthorName  string `gorm:"size:100;not null"`
	AuthorEmail string `gorm:"size:200"`
	Content     string `gorm:"type:text;not null"`
	Approved    bool   `gorm:"default:false"`
}

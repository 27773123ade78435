package db

import "gorm.io/gorm"

// ResumeSection is one block of the resume page. SectionType selects the
// template treatment (header, summary, skills, experience, education).
// Content holds markdown, or a JSON payload for structured blocks.
type ResumeSection struct {
	gorm.Model
	SectionType string `gorm:"size:50;not null"`
	Title       string `gorm:"size:200"`
	Content     string `gorm:"type:text"`
	SortOrder int `gorm:"default:0"`
	// No column default here: a default would make gorm drop an explicit
	// false from the INSERT. The service sets visibility on every create.
	Visible bool
}

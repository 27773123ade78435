package db

import "gorm.io/gorm"

// Project is a portfolio entry. TechStack is a comma-separated list and
// Metrics a short outcome line such as "40% latency reduction".
type Project struct {
	gorm.Model
	Title            string `gorm:"size:200;not null"`
	Slug             string `gorm:"size:200;uniqueIndex;not null"`
	Description      string `gorm:"type:text"`
	ShortDescription string `gorm:"size:300"`
	TechStack        string `gorm:"size:500"`
	Metrics          string `gorm:"size:500"`
	GithubURL        string `gorm:"size:500"`
	LiveURL          string `gorm:"size:500"`
	Featured         bool   `gorm:"default:false"`
	SortOrder        int    `gorm:"default:0"`
}

package db

import "time"

// Section is a flexible markdown block identified by (page, section_key),
// for example page "home", key "hero". Sections back the inline editor.
// Deletes are hard so a removed key can be recreated under the same pair.
type Section struct {
	ID         uint   `gorm:"primaryKey"`
	Page       string `gorm:"size:50;uniqueIndex:idx_sections_page_key;not null"`
	SectionKey string `gorm:"size:100;uniqueIndex:idx_sections_page_key;not null"`
	Title      string `gorm:"size:200"`
	Content    string `gorm:"type:text"`
	SortOrder  int    `gorm:"default:0"`
	Visible    bool   `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

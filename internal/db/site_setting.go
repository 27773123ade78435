package db

import "gorm.io/gorm"

// SiteSetting stores an admin-editable site-wide key/value pair.
type SiteSetting struct {
	gorm.Model
	Key         string `gorm:"size:100;uniqueIndex;not null"`
	Value       string `gorm:"type:text"`
	Description string `gorm:"size:300"`
}

// TableName keeps the table name explicit.
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeySiteName is the site display name.
	SettingKeySiteName = "site_name"
	// SettingKeySiteTagline is the short line shown under the site name.
	SettingKeySiteTagline = "site_tagline"
	// SettingKeySiteEmail is the public contact address and the recipient
	// of contact form notifications.
	SettingKeySiteEmail = "site_email"
	// SettingKeySitePhone is the public phone number.
	SettingKeySitePhone = "site_phone"
	// SettingKeyLinkedinURL is the LinkedIn profile link.
	SettingKeyLinkedinURL = "linkedin_url"
	// SettingKeyGithubURL is the GitHub profile link.
	SettingKeyGithubURL = "github_url"
	// SettingKeyFooterText overrides the rendered footer when non-empty.
	SettingKeyFooterText = "footer_text"
)

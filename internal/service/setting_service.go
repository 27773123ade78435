package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingService reads and writes the site-wide key/value settings,
// layering stored rows over the compiled-in defaults.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a SettingService instance.
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// Get resolves one setting: the stored value wins, then the built-in
// default, then the empty string.
func (s *SettingService) Get(key string) (string, error) {
	var record db.SiteSetting
	err := s.db.Where("key = ?", key).First(&record).Error
	if err == nil {
		return record.Value, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("load setting %s: %w", key, err)
	}
	return defaultSettings[key], nil
}

// GetAll returns the defaults overwritten key-by-key with every stored
// setting, so the store always wins.
func (s *SettingService) GetAll() (map[string]string, error) {
	merged := make(map[string]string, len(defaultSettings))
	for key, value := range defaultSettings {
		merged[key] = value
	}

	var records []db.SiteSetting
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	for _, record := range records {
		merged[record.Key] = record.Value
	}

	return merged, nil
}

// Set upserts a setting by key. The description is only written when
// non-empty so a plain value update cannot erase it.
func (s *SettingService) Set(key, value, description string) error {
	assignments := map[string]interface{}{
		"value":      value,
		"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
	}
	if strings.TrimSpace(description) != "" {
		assignments["description"] = description
	}

	setting := db.SiteSetting{Key: key, Value: value, Description: description}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

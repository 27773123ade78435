package service

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrSectionExists   = errors.New("section already exists")
	ErrSectionInvalid  = errors.New("page and section_key are required")
)

// SectionService manages the inline-editable content blocks that make up
// the public pages.
type SectionService struct {
	db *gorm.DB
}

// SectionInput describes an explicit create through the admin API.
type SectionInput struct {
	Page       string
	SectionKey string
	Title      string
	Content    string
	SortOrder  int
}

// NewSectionService creates a SectionService instance.
func NewSectionService(gdb *gorm.DB) *SectionService {
	return &SectionService{db: gdb}
}

// GetSection looks up the section for (page, key) without side effects.
func (s *SectionService) GetSection(page, key string) (*db.Section, error) {
	var section db.Section
	if err := s.db.Where("page = ? AND section_key = ?", page, key).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// GetOrCreateSection returns the stored section for (page, key), creating
// it from the defaults catalog when absent. Two concurrent callers for the
// same pair race on the unique index; the loser's insert affects no rows
// and the winner's row is re-read instead.
func (s *SectionService) GetOrCreateSection(page, key string) (*db.Section, error) {
	section, err := s.GetSection(page, key)
	if err == nil {
		return section, nil
	}
	if !errors.Is(err, ErrSectionNotFound) {
		return nil, err
	}

	def := lookupSectionDefault(page, key)
	title := def.Title
	if title == "" {
		title = defaultTitle(key)
	}

	fresh := db.Section{
		Page:       page,
		SectionKey: key,
		Title:      title,
		Content:    def.Content,
		SortOrder:  0,
		Visible:    true,
	}

	insert := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}, {Name: "section_key"}},
		DoNothing: true,
	}).Create(&fresh)
	if insert.Error != nil {
		return nil, fmt.Errorf("create section %s/%s: %w", page, key, insert.Error)
	}
	if insert.RowsAffected == 1 {
		return &fresh, nil
	}

	return s.GetSection(page, key)
}

// GetPageSections returns the stored sections for a page ordered by sort
// order then id. It never creates rows.
func (s *SectionService) GetPageSections(page string) ([]db.Section, error) {
	var sections []db.Section
	if err := s.db.Where("page = ?", page).
		Order("sort_order ASC, id ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// GetSectionsForPage returns the full section set used to render a page:
// stored sections plus every catalog entry, seeding whatever is missing.
func (s *SectionService) GetSectionsForPage(page string) ([]db.Section, error) {
	sections, err := s.GetPageSections(page)
	if err != nil {
		return nil, err
	}

	defs := defaultSections[page]
	if len(sections) == 0 && len(defs) > 0 {
		return s.InitPageSections(page)
	}

	present := make(map[string]bool, len(sections))
	for _, section := range sections {
		present[section.SectionKey] = true
	}
	for _, def := range defs {
		if present[def.Key] {
			continue
		}
		section, err := s.GetOrCreateSection(page, def.Key)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *section)
	}

	return sections, nil
}

// InitPageSections seeds every catalog entry for the page that is not
// stored yet, assigning sort order from the catalog position. Existing
// rows are skipped, so re-running cannot duplicate anything. The returned
// slice holds the catalog sections in catalog order.
func (s *SectionService) InitPageSections(page string) ([]db.Section, error) {
	defs := defaultSections[page]

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for position, def := range defs {
			title := def.Title
			if title == "" {
				title = defaultTitle(def.Key)
			}
			section := db.Section{
				Page:       page,
				SectionKey: def.Key,
				Title:      title,
				Content:    def.Content,
				SortOrder:  position,
				Visible:    true,
			}
			insert := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "page"}, {Name: "section_key"}},
				DoNothing: true,
			}).Create(&section)
			if insert.Error != nil {
				return fmt.Errorf("seed section %s/%s: %w", page, def.Key, insert.Error)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sections := make([]db.Section, 0, len(defs))
	for _, def := range defs {
		section, err := s.GetSection(page, def.Key)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *section)
	}
	return sections, nil
}

// UpdateSection overwrites the content for (page, key), creating the
// section from defaults first when needed. The title changes only when a
// non-nil title is supplied.
func (s *SectionService) UpdateSection(page, key, content string, title *string) (*db.Section, error) {
	section, err := s.GetOrCreateSection(page, key)
	if err != nil {
		return nil, err
	}

	section.Content = content
	if title != nil {
		section.Title = *title
	}
	if err := s.db.Save(section).Error; err != nil {
		return nil, fmt.Errorf("update section %s/%s: %w", page, key, err)
	}
	return section, nil
}

// CreateSection inserts a brand-new section and reports ErrSectionExists
// when the (page, section_key) pair is already taken. The existing row is
// never touched.
func (s *SectionService) CreateSection(input SectionInput) (*db.Section, error) {
	page := strings.TrimSpace(input.Page)
	key := strings.TrimSpace(input.SectionKey)
	if page == "" || key == "" {
		return nil, ErrSectionInvalid
	}

	section := db.Section{
		Page:       page,
		SectionKey: key,
		Title:      input.Title,
		Content:    input.Content,
		SortOrder:  input.SortOrder,
		Visible:    true,
	}

	insert := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}, {Name: "section_key"}},
		DoNothing: true,
	}).Create(&section)
	if insert.Error != nil {
		return nil, fmt.Errorf("create section %s/%s: %w", page, key, insert.Error)
	}
	if insert.RowsAffected == 0 {
		return nil, ErrSectionExists
	}
	return &section, nil
}

// DeleteSection removes a section by id and reports whether a row was
// actually deleted. Unknown ids are not an error.
func (s *SectionService) DeleteSection(id uint) (bool, error) {
	result := s.db.Delete(&db.Section{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RenderSection converts a section's markdown content to sanitized HTML.
// Nil sections and empty content render as the empty string.
func (s *SectionService) RenderSection(section *db.Section) template.HTML {
	if section == nil || strings.TrimSpace(section.Content) == "" {
		return ""
	}
	html, err := RenderMarkdown(section.Content)
	if err != nil {
		return ""
	}
	return html
}

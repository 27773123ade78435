package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrResumeSectionNotFound = errors.New("resume section not found")
	ErrResumeSectionInvalid  = errors.New("resume section type is required")
)

// ResumeService manages the ordered blocks of the resume page.
type ResumeService struct {
	db *gorm.DB
}

// ResumeSectionInput carries an admin create or partial update.
type ResumeSectionInput struct {
	SectionType string
	Title       string
	Content     string
	SortOrder   *int
	Visible     *bool
}

// NewResumeService creates a ResumeService instance.
func NewResumeService(gdb *gorm.DB) *ResumeService {
	return &ResumeService{db: gdb}
}

// GetResumeSections returns the visible blocks in display order. The very
// first read of an empty table seeds the built-in blocks in one
// transaction; a table that only holds hidden blocks stays as it is.
func (s *ResumeService) GetResumeSections() ([]db.ResumeSection, error) {
	sections, err := s.visibleSections()
	if err != nil {
		return nil, err
	}
	if len(sections) > 0 {
		return sections, nil
	}

	var total int64
	if err := s.db.Model(&db.ResumeSection{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if total > 0 {
		return sections, nil
	}

	if err := s.seedDefaults(); err != nil {
		return nil, err
	}
	return s.visibleSections()
}

// ListAll returns every block including hidden ones for the admin editor,
// seeding the defaults when the table is completely empty.
func (s *ResumeService) ListAll() ([]db.ResumeSection, error) {
	var sections []db.ResumeSection
	if err := s.db.Order("sort_order ASC, id ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	if len(sections) > 0 {
		return sections, nil
	}

	if err := s.seedDefaults(); err != nil {
		return nil, err
	}
	if err := s.db.Order("sort_order ASC, id ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// Get fetches one block by id.
func (s *ResumeService) Get(id uint) (*db.ResumeSection, error) {
	var section db.ResumeSection
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// Create adds a new block. Sort order defaults to the end of the list.
func (s *ResumeService) Create(input ResumeSectionInput) (*db.ResumeSection, error) {
	sectionType := strings.TrimSpace(input.SectionType)
	if sectionType == "" {
		return nil, ErrResumeSectionInvalid
	}

	section := db.ResumeSection{
		SectionType: sectionType,
		Title:       input.Title,
		Content:     input.Content,
		Visible:     true,
	}
	if input.Visible != nil {
		section.Visible = *input.Visible
	}

	if input.SortOrder != nil {
		section.SortOrder = *input.SortOrder
	} else {
		next, err := s.nextSortOrder()
		if err != nil {
			return nil, err
		}
		section.SortOrder = next
	}

	if err := s.db.Create(&section).Error; err != nil {
		return nil, fmt.Errorf("create resume section: %w", err)
	}
	return &section, nil
}

// Update applies the non-nil parts of the input to an existing block.
func (s *ResumeService) Update(id uint, input ResumeSectionInput) (*db.ResumeSection, error) {
	section, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if trimmed := strings.TrimSpace(input.SectionType); trimmed != "" {
		section.SectionType = trimmed
	}
	section.Title = input.Title
	section.Content = input.Content
	if input.SortOrder != nil {
		section.SortOrder = *input.SortOrder
	}
	if input.Visible != nil {
		section.Visible = *input.Visible
	}

	if err := s.db.Save(section).Error; err != nil {
		return nil, fmt.Errorf("update resume section %d: %w", id, err)
	}
	return section, nil
}

// Delete removes a block permanently.
func (s *ResumeService) Delete(id uint) error {
	section, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(section).Error
}

func (s *ResumeService) visibleSections() ([]db.ResumeSection, error) {
	var sections []db.ResumeSection
	if err := s.db.Where("visible = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *ResumeService) seedDefaults() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Re-check inside the transaction so two racing first reads
		// cannot both seed.
		var total int64
		if err := tx.Model(&db.ResumeSection{}).Count(&total).Error; err != nil {
			return err
		}
		if total > 0 {
			return nil
		}

		for _, def := range defaultResumeSections {
			section := db.ResumeSection{
				SectionType: def.SectionType,
				Title:       def.Title,
				Content:     def.Content,
				SortOrder:   def.SortOrder,
				Visible:     true,
			}
			if err := tx.Create(&section).Error; err != nil {
				return fmt.Errorf("seed resume section %s: %w", def.SectionType, err)
			}
		}
		return nil
	})
}

func (s *ResumeService) nextSortOrder() (int, error) {
	var next int
	err := s.db.Model(&db.ResumeSection{}).
		Select("COALESCE(MAX(sort_order), -1) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

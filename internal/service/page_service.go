package service

import (
	"errors"
	"fmt"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPageNotFound = errors.New("page not found")

// PageService provides the static long-form pages such as About and Now.
type PageService struct {
	db *gorm.DB
}

// PageInput carries an admin page edit.
type PageInput struct {
	Title           string
	Content         string
	MetaDescription string
}

// NewPageService creates a PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// GetPage fetches a page by slug, lazily creating it from the defaults
// catalog the first time a known slug is requested. Slugs the catalog does
// not know fail with ErrPageNotFound.
func (s *PageService) GetPage(slug string) (*db.Page, error) {
	var page db.Page
	err := s.db.Where("slug = ?", slug).First(&page).Error
	if err == nil {
		return &page, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	def, ok := defaultPages[slug]
	if !ok {
		return nil, ErrPageNotFound
	}

	return s.createPage(slug, def.Title, def.Content, def.MetaDescription)
}

// EnsurePage is GetPage for the admin editor: slugs missing from both the
// store and the catalog are created blank with a title derived from the
// slug instead of failing.
func (s *PageService) EnsurePage(slug string) (*db.Page, error) {
	page, err := s.GetPage(slug)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, ErrPageNotFound) {
		return nil, err
	}

	return s.createPage(slug, defaultTitle(slug), "", "")
}

// UpdatePage stores new content for a slug, creating the row when missing.
func (s *PageService) UpdatePage(slug string, input PageInput) (*db.Page, error) {
	var page db.Page
	err := s.db.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return s.createPage(slug, input.Title, input.Content, input.MetaDescription)
	}

	page.Title = input.Title
	page.Content = input.Content
	page.MetaDescription = input.MetaDescription
	if err := s.db.Save(&page).Error; err != nil {
		return nil, fmt.Errorf("update page %s: %w", slug, err)
	}
	return &page, nil
}

// ListPages returns every stored page for the admin index.
func (s *PageService) ListPages() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("slug ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// createPage inserts a page, tolerating a concurrent insert of the same
// slug by re-reading the surviving row.
func (s *PageService) createPage(slug, title, content, meta string) (*db.Page, error) {
	page := db.Page{Slug: slug, Title: title, Content: content, MetaDescription: meta}

	insert := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&page)
	if insert.Error != nil {
		return nil, fmt.Errorf("create page %s: %w", slug, insert.Error)
	}
	if insert.RowsAffected == 1 {
		return &page, nil
	}

	var existing db.Page
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

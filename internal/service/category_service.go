package service

import (
	"errors"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryInvalid  = errors.New("category name is required")
)

// CategoryService wraps category related operations.
type CategoryService struct {
	db *gorm.DB
}

// CategoryUsage pairs a category with the number of posts filed under it.
type CategoryUsage struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	Count       int64
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// List returns all categories ordered by name.
func (s *CategoryService) List() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListUsage returns every category with its total post count for the
// admin taxonomy page.
func (s *CategoryService) ListUsage() ([]CategoryUsage, error) {
	var rows []CategoryUsage
	err := s.db.Table("categories").
		Select("categories.id, categories.name, categories.slug, categories.description, COUNT(post_categories.post_id) AS count").
		Joins("LEFT JOIN post_categories ON post_categories.category_id = categories.id").
		Where("categories.deleted_at IS NULL").
		Group("categories.id, categories.name, categories.slug, categories.description").
		Order("categories.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PublishedUsage returns categories holding at least one published post,
// for the public blog sidebar.
func (s *CategoryService) PublishedUsage() ([]CategoryUsage, error) {
	var rows []CategoryUsage
	err := s.db.Table("categories").
		Select("categories.id, categories.name, categories.slug, categories.description, COUNT(DISTINCT posts.id) AS count").
		Joins("JOIN post_categories ON post_categories.category_id = categories.id").
		Joins("JOIN posts ON posts.id = post_categories.post_id").
		Where("posts.published = ? AND posts.deleted_at IS NULL AND categories.deleted_at IS NULL", true).
		Group("categories.id, categories.name, categories.slug, categories.description").
		Order("categories.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetBySlug fetches a single category.
func (s *CategoryService) GetBySlug(slug string) (*db.Category, error) {
	var category db.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a category with a unique name, used by the admin form.
func (s *CategoryService) Create(name, description string) (*db.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrCategoryInvalid
	}

	category := db.Category{
		Name:        trimmed,
		Slug:        slugify(trimmed),
		Description: strings.TrimSpace(description),
	}
	insert := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&category)
	if insert.Error != nil {
		return nil, insert.Error
	}
	if insert.RowsAffected == 0 {
		return nil, ErrCategoryExists
	}
	return &category, nil
}

// GetOrCreate resolves a category by exact name, inserting it when missing.
func (s *CategoryService) GetOrCreate(name string) (*db.Category, error) {
	category, err := getOrCreateCategory(s.db, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryInvalid
	}
	return category, nil
}

// Delete removes a category and its post links. Posts stay put.
func (s *CategoryService) Delete(id uint) error {
	var category db.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&category).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&category).Error
	})
}

// getOrCreateCategory mirrors getOrCreateTag for categories.
func getOrCreateCategory(tx *gorm.DB, name string) (*db.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}

	var category db.Category
	err := tx.Where("name = ?", trimmed).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := db.Category{Name: trimmed, Slug: slugify(trimmed)}
	insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh)
	if insert.Error != nil {
		return nil, insert.Error
	}
	if insert.RowsAffected == 1 {
		return &fresh, nil
	}

	if err := tx.Where("name = ?", trimmed).First(&fresh).Error; err == nil {
		return &fresh, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := tx.Where("slug = ?", fresh.Slug).First(&fresh).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

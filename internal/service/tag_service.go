package service

import (
	"errors"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTagNotFound = errors.New("tag not found")
	ErrTagInvalid  = errors.New("tag name is required")
)

// TagService wraps tag related operations.
type TagService struct {
	db *gorm.DB
}

// TagUsage pairs a tag with the number of posts carrying it.
type TagUsage struct {
	ID    uint
	Name  string
	Slug  string
	Count int64
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// List returns all tags ordered by name.
func (s *TagService) List() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListUsage returns every tag with its total post count for the admin
// taxonomy page.
func (s *TagService) ListUsage() ([]TagUsage, error) {
	var rows []TagUsage
	err := s.db.Table("tags").
		Select("tags.id, tags.name, tags.slug, COUNT(post_tags.post_id) AS count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("tags.deleted_at IS NULL").
		Group("tags.id, tags.name, tags.slug").
		Order("tags.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PublishedUsage returns tags used by at least one published post, for
// the public blog sidebar.
func (s *TagService) PublishedUsage() ([]TagUsage, error) {
	var rows []TagUsage
	err := s.db.Table("tags").
		Select("tags.id, tags.name, tags.slug, COUNT(DISTINCT posts.id) AS count").
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("JOIN posts ON posts.id = post_tags.post_id").
		Where("posts.published = ? AND posts.deleted_at IS NULL AND tags.deleted_at IS NULL", true).
		Group("tags.id, tags.name, tags.slug").
		Order("tags.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetBySlug fetches a single tag.
func (s *TagService) GetBySlug(slug string) (*db.Tag, error) {
	var tag db.Tag
	if err := s.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetOrCreate resolves a tag by exact name, inserting it when missing.
func (s *TagService) GetOrCreate(name string) (*db.Tag, error) {
	tag, err := getOrCreateTag(s.db, name)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrTagInvalid
	}
	return tag, nil
}

// Delete removes a tag and its post links. Posts keep their other tags.
func (s *TagService) Delete(id uint) error {
	var tag db.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&tag).Error
	})
}

// getOrCreateTag finds a tag by exact name or inserts it, racing safely
// against concurrent inserts of the same name. Blank names resolve to nil.
func getOrCreateTag(tx *gorm.DB, name string) (*db.Tag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}

	var tag db.Tag
	err := tx.Where("name = ?", trimmed).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := db.Tag{Name: trimmed, Slug: slugify(trimmed)}
	insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh)
	if insert.Error != nil {
		return nil, insert.Error
	}
	if insert.RowsAffected == 1 {
		return &fresh, nil
	}

	// Lost the insert. Prefer the exact name, fall back to the slug owner
	// when a differently spelled name produced the same slug.
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

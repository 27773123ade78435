package service

import (
	"errors"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectExists   = errors.New("a project with this slug already exists")
	ErrProjectInvalid  = errors.New("title and description are required")
)

// ProjectService wraps portfolio project operations.
type ProjectService struct {
	db *gorm.DB
}

// ProjectInput represents fields accepted when creating or updating a
// project. A nil SortOrder appends the project after the current last one.
type ProjectInput struct {
	Title            string
	Slug             string
	Description      string
	ShortDescription string
	TechStack        string
	Metrics          string
	GithubURL        string
	LiveURL          string
	Featured         bool
	SortOrder        *int
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// List returns all projects, featured first, then by sort order.
func (s *ProjectService) List() ([]db.Project, error) {
	var projects []db.Project
	if err := s.db.Order("featured desc, sort_order asc, created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListFeatured returns up to limit featured projects for the home page.
func (s *ProjectService) ListFeatured(limit int) ([]db.Project, error) {
	query := s.db.Where("featured = ?", true).Order("sort_order asc, created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var projects []db.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetBySlug fetches a single project.
func (s *ProjectService) GetBySlug(slug string) (*db.Project, error) {
	var project db.Project
	if err := s.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Get fetches a project by id.
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create persists a new project.
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrProjectInvalid
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(title)
	}
	if slug == "" {
		return nil, ErrProjectInvalid
	}

	var count int64
	if err := s.db.Model(&db.Project{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProjectExists
	}

	sortOrder := 0
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	} else {
		next, err := s.nextSortOrder()
		if err != nil {
			return nil, err
		}
		sortOrder = next
	}

	project := &db.Project{
		Title:            title,
		Slug:             slug,
		Description:      input.Description,
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		TechStack:        strings.TrimSpace(input.TechStack),
		Metrics:          strings.TrimSpace(input.Metrics),
		GithubURL:        strings.TrimSpace(input.GithubURL),
		LiveURL:          strings.TrimSpace(input.LiveURL),
		Featured:         input.Featured,
		SortOrder:        sortOrder,
	}
	if err := s.db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Update rewrites a project.
func (s *ProjectService) Update(id uint, input ProjectInput) (*db.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrProjectInvalid
	}

	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(title)
	}

	var count int64
	if err := s.db.Model(&db.Project{}).Where("slug = ? AND id <> ?", slug, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProjectExists
	}

	project.Title = title
	project.Slug = slug
	project.Description = input.Description
	project.ShortDescription = strings.TrimSpace(input.ShortDescription)
	project.TechStack = strings.TrimSpace(input.TechStack)
	project.Metrics = strings.TrimSpace(input.Metrics)
	project.GithubURL = strings.TrimSpace(input.GithubURL)
	project.LiveURL = strings.TrimSpace(input.LiveURL)
	project.Featured = input.Featured
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}

	if err := s.db.Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes a project for good so its slug can be reused.
func (s *ProjectService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// Count reports the number of projects for the dashboard.
func (s *ProjectService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&db.Project{}).Count(&count).Error
	return count, err
}

func (s *ProjectService) nextSortOrder() (int, error) {
	var maxSort int
	if err := s.db.Model(&db.Project{}).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxSort).Error; err != nil {
		return 0, err
	}
	return maxSort + 1, nil
}

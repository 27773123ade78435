package service

import (
	"errors"
	"strings"
	"time"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrPostExists   = errors.New("a post with this slug already exists")
	ErrPostInvalid  = errors.New("title and content are required")
)

// PostService wraps post related database operations.
type PostService struct {
	db *gorm.DB
}

// PostFilter narrows public post listings. Month is only honored
// together with Year.
type PostFilter struct {
	TagSlug      string
	CategorySlug string
	Year         int
	Month        int
	Limit        int
}

// PostInput represents fields accepted when creating or updating a post.
// Slug is derived from the title when blank, the excerpt from the content.
type PostInput struct {
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	Published     bool
	TagNames      []string
	CategoryNames []string
}

// ArchiveMonth is one year/month bucket of published posts.
type ArchiveMonth struct {
	Year  int
	Month time.Month
	Count int
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// ListPublished returns published posts newest first, narrowed by filter.
func (s *PostService) ListPublished(filter PostFilter) ([]db.Post, error) {
	query := s.db.Model(&db.Post{}).Where("posts.published = ?", true)
	query = applyPostFilter(query, filter)

	var posts []db.Post
	if err := query.Preload("Tags").Preload("Categories").
		Order("posts.created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBySlug fetches a published post for public display.
func (s *PostService) GetBySlug(slug string) (*db.Post, error) {
	var post db.Post
	err := s.db.Preload("Tags").Preload("Categories").
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListAll returns every post for the admin list, newest first.
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Preload("Tags").Preload("Categories").
		Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListRecent returns the newest posts for the admin dashboard.
func (s *PostService) ListRecent(limit int) ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Order("created_at desc").Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id with taxonomy preloaded.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("Tags").Preload("Categories").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create persists a post and resolves its tags and categories by name
// in a transaction.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrPostInvalid
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(title)
	}
	if slug == "" {
		return nil, ErrPostInvalid
	}

	excerpt := strings.TrimSpace(input.Excerpt)
	if excerpt == "" {
		excerpt = Excerpt(input.Content, 200)
	}

	post := &db.Post{
		Title:     title,
		Slug:      slug,
		Content:   input.Content,
		Excerpt:   excerpt,
		Published: input.Published,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.Post{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrPostExists
		}
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return replaceTaxonomy(tx, post, input.TagNames, input.CategoryNames)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(post.ID)
}

// Update rewrites a post and replaces its taxonomy.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrPostInvalid
	}

	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(title)
	}

	excerpt := strings.TrimSpace(input.Excerpt)
	if excerpt == "" {
		excerpt = Excerpt(input.Content, 200)
	}

	post.Title = title
	post.Slug = slug
	post.Content = input.Content
	post.Excerpt = excerpt
	post.Published = input.Published

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.Post{}).Where("slug = ? AND id <> ?", slug, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrPostExists
		}
		if err := tx.Save(&post).Error; err != nil {
			return err
		}
		return replaceTaxonomy(tx, &post, input.TagNames, input.CategoryNames)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(post.ID)
}

// TogglePublished flips the published flag.
func (s *PostService) TogglePublished(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	post.Published = !post.Published
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post together with its comments and taxonomy links.
// Slugs are unique, so rows go away for good instead of lingering as
// tombstones that would block slug reuse.
func (s *PostService) Delete(id uint) error {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Unscoped().Delete(&db.Comment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&post).Error
	})
}

// ListArchive groups published posts into year/month buckets, newest first.
func (s *PostService) ListArchive() ([]ArchiveMonth, error) {
	var posts []db.Post
	if err := s.db.Select("created_at").Where("published = ?", true).
		Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}

	var months []ArchiveMonth
	for _, post := range posts {
		year, month := post.CreatedAt.Year(), post.CreatedAt.Month()
		if n := len(months); n > 0 && months[n-1].Year == year && months[n-1].Month == month {
			months[n-1].Count++
			continue
		}
		months = append(months, ArchiveMonth{Year: year, Month: month, Count: 1})
	}
	return months, nil
}

// CountByStatus returns total and published post counts for the dashboard.
func (s *PostService) CountByStatus() (total, published int64, err error) {
	if err = s.db.Model(&db.Post{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = s.db.Model(&db.Post{}).Where("published = ?", true).Count(&published).Error
	return total, published, err
}

func replaceTaxonomy(tx *gorm.DB, post *db.Post, tagNames, categoryNames []string) error {
	tags, err := resolveTags(tx, tagNames)
	if err != nil {
		return err
	}
	if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
		return err
	}

	categories, err := resolveCategories(tx, categoryNames)
	if err != nil {
		return err
	}
	return tx.Model(post).Association("Categories").Replace(categories)
}

func resolveTags(tx *gorm.DB, names []string) ([]db.Tag, error) {
	tags := make([]db.Tag, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		tag, err := getOrCreateTag(tx, name)
		if err != nil {
			return nil, err
		}
		if tag == nil || seen[tag.Slug] {
			continue
		}
		seen[tag.Slug] = true
		tags = append(tags, *tag)
	}
	return tags, nil
}

func resolveCategories(tx *gorm.DB, names []string) ([]db.Category, error) {
	categories := make([]db.Category, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		category, err := getOrCreateCategory(tx, name)
		if err != nil {
			return nil, err
		}
		if category == nil || seen[category.Slug] {
			continue
		}
		seen[category.Slug] = true
		categories = append(categories, *category)
	}
	return categories, nil
}

func applyPostFilter(query *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.TagSlug != "" {
		query = query.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN post_categories ON post_categories.post_id = posts.id").
			Joins("JOIN categories ON categories.id = post_categories.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Year > 0 {
		start, end := archiveRange(filter.Year, filter.Month)
		query = query.Where("posts.created_at >= ? AND posts.created_at < ?", start, end)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	return query
}

// archiveRange resolves a year or a year/month pair into a half-open
// [start, end) interval in local time, matching how timestamps are written.
func archiveRange(year, month int) (time.Time, time.Time) {
	if month < 1 || month > 12 {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(1, 0, 0)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

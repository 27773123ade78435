package service

import (
	"errors"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrCommentInvalid  = errors.New("name and comment text are required")
)

// CommentService wraps comment related operations. New comments are held
// for moderation and stay invisible until approved.
type CommentService struct {
	db *gorm.DB
}

// CommentInput represents a public comment submission.
type CommentInput struct {
	PostID      uint
	AuthorName  string
	AuthorEmail string
	Content     string
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// Create stores a pending comment on a published post.
func (s *CommentService) Create(input CommentInput) (*db.Comment, error) {
	name := strings.TrimSpace(input.AuthorName)
	content := strings.TrimSpace(input.Content)
	if name == "" || content == "" {
		return nil, ErrCommentInvalid
	}

	var count int64
	if err := s.db.Model(&db.Post{}).
		Where("id = ? AND published = ?", input.PostID, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrPostNotFound
	}

	comment := &db.Comment{
		PostID:      input.PostID,
		AuthorName:  name,
		AuthorEmail: strings.TrimSpace(input.AuthorEmail),
		Content:     content,
		Approved:    false,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ListApproved returns a post's visible comments, oldest first.
func (s *CommentService) ListApproved(postID uint) ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Where("post_id = ? AND approved = ?", postID, true).
		Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListPending returns comments awaiting moderation, newest first.
func (s *CommentService) ListPending() ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Preload("Post").Where("approved = ?", false).
		Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAll returns every comment for the admin moderation page, pending
// ones first.
func (s *CommentService) ListAll() ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Preload("Post").
		Order("approved asc, created_at desc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Approve makes a comment publicly visible.
func (s *CommentService) Approve(id uint) error {
	result := s.db.Model(&db.Comment{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment outright.
func (s *CommentService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// CountPending reports how many comments await moderation.
func (s *CommentService) CountPending() (int64, error) {
	var count int64
	err := s.db.Model(&db.Comment{}).Where("approved = ?", false).Count(&count).Error
	return count, err
}

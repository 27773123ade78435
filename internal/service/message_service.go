package service

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrMessageInvalid  = errors.New("name, a valid email and a message are required")
)

// MessageService stores contact form submissions for the admin inbox.
type MessageService struct {
	db *gorm.DB
}

// MessageInput represents a public contact form submission.
type MessageInput struct {
	Name    string
	Email   string
	Message string
}

// NewMessageService creates a MessageService instance.
func NewMessageService(gdb *gorm.DB) *MessageService {
	return &MessageService{db: gdb}
}

// Create validates and stores a contact message.
func (s *MessageService) Create(input MessageInput) (*db.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	body := strings.TrimSpace(input.Message)
	if name == "" || email == "" || body == "" {
		return nil, ErrMessageInvalid
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrMessageInvalid
	}

	message := &db.ContactMessage{
		Name:    name,
		Email:   email,
		Message: body,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// ListAll returns messages newest first.
func (s *MessageService) ListAll() ([]db.ContactMessage, error) {
	var messages []db.ContactMessage
	if err := s.db.Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListUnread returns unread messages newest first for the dashboard.
func (s *MessageService) ListUnread(limit int) ([]db.ContactMessage, error) {
	query := s.db.Where("read = ?", false).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messages []db.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Get fetches a single message.
func (s *MessageService) Get(id uint) (*db.ContactMessage, error) {
	var message db.ContactMessage
	if err := s.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// MarkRead flags a message as read.
func (s *MessageService) MarkRead(id uint) error {
	result := s.db.Model(&db.ContactMessage{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// Delete removes a message outright.
func (s *MessageService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// CountUnread reports how many messages are still unread.
func (s *MessageService) CountUnread() (int64, error) {
	var count int64
	err := s.db.Model(&db.ContactMessage{}).Where("read = ?", false).Count(&count).Error
	return count, err
}

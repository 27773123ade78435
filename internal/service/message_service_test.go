package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/folio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMessageServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:message-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.ContactMessage{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestMessageCreateValidates(t *testing.T) {
	gdb, cleanup := setupMessageServiceTestDB(t)
	defer cleanup()

	svc := NewMessageService(gdb)
	message, err := svc.Create(MessageInput{Name: " Ada ", Email: "ada@example.com", Message: "Hello there"})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}
	if message.Name != "Ada" || message.Read {
		t.Fatalf("expected trimmed unread message, got %+v", message)
	}

	cases := []MessageInput{
		{Name: "", Email: "a@example.com", Message: "hi"},
		{Name: "A", Email: "", Message: "hi"},
		{Name: "A", Email: "not-an-email", Message: "hi"},
		{Name: "A", Email: "a@example.com", Message: "  "},
	}
	for i, input := range cases {
		if _, err := svc.Create(input); !errors.Is(err, ErrMessageInvalid) {
			t.Fatalf("case %d: expected ErrMessageInvalid, got %v", i, err)
		}
	}
}

func TestMessageMarkReadAndCounts(t *testing.T) {
	gdb, cleanup := setupMessageServiceTestDB(t)
	defer cleanup()

	svc := NewMessageService(gdb)
	first, err := svc.Create(MessageInput{Name: "A", Email: "a@example.com", Message: "one"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := svc.Create(MessageInput{Name: "B", Email: "b@example.com", Message: "two"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	unread, err := svc.CountUnread()
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 2 {
		t.Fatalf("expected 2 unread, got %d", unread)
	}

	if err := svc.MarkRead(first.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	unread, err = svc.CountUnread()
	if err != nil {
		t.Fatalf("count unread after read: %v", err)
	}
	if unread != 1 {
		t.Fatalf("expected 1 unread, got %d", unread)
	}

	remaining, err := svc.ListUnread(10)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Name != "B" {
		t.Fatalf("expected only the second message unread, got %+v", remaining)
	}

	if err := svc.MarkRead(9999); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestMessageGetAndDelete(t *testing.T) {
	gdb, cleanup := setupMessageServiceTestDB(t)
	defer cleanup()

	svc := NewMessageService(gdb)
	message, err := svc.Create(MessageInput{Name: "A", Email: "a@example.com", Message: "hello"})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}

	loaded, err := svc.Get(message.ID)
	if err != nil {
		t.Fatalf("get message: %v", err)
	}
	if loaded.Message != "hello" {
		t.Fatalf("expected stored body, got %q", loaded.Message)
	}

	if err := svc.Delete(message.ID); err != nil {
		t.Fatalf("delete message: %v", err)
	}
	if _, err := svc.Get(message.ID); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected message to be gone, got %v", err)
	}
	if err := svc.Delete(message.ID); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound on second delete, got %v", err)
	}
}

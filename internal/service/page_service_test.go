package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/folio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPageServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:page-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Page{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestGetPageSeedsKnownSlugOnce(t *testing.T) {
	gdb, cleanup := setupPageServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	page, err := svc.GetPage("about")
	if err != nil {
		t.Fatalf("get page: %v", err)
	}

	if page.Title != "About Me" {
		t.Fatalf("expected built-in title, got %q", page.Title)
	}
	if !strings.Contains(page.Content, "specialize") {
		t.Fatalf("expected built-in content, got %q", page.Content)
	}

	again, err := svc.GetPage("about")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ID != page.ID {
		t.Fatalf("expected the stored row back, got id %d want %d", again.ID, page.ID)
	}

	var count int64
	if err := gdb.Model(&db.Page{}).Count(&count).Error; err != nil {
		t.Fatalf("count pages: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestGetPageRejectsUnknownSlug(t *testing.T) {
	gdb, cleanup := setupPageServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	if _, err := svc.GetPage("no-such-page"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}

	var count int64
	if err := gdb.Model(&db.Page{}).Count(&count).Error; err != nil {
		t.Fatalf("count pages: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows for unknown slug, got %d", count)
	}
}

func TestEnsurePageCreatesBlankForNewSlug(t *testing.T) {
	gdb, cleanup := setupPageServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	page, err := svc.EnsurePage("press_kit")
	if err != nil {
		t.Fatalf("ensure page: %v", err)
	}

	if page.Title != "Press Kit" {
		t.Fatalf("expected generated title, got %q", page.Title)
	}
	if page.Content != "" {
		t.Fatalf("expected blank content, got %q", page.Content)
	}
}

func TestUpdatePageRewritesAndCreates(t *testing.T) {
	gdb, cleanup := setupPageServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	if _, err := svc.GetPage("now"); err != nil {
		t.Fatalf("seed now page: %v", err)
	}

	page, err := svc.UpdatePage("now", PageInput{Title: "Right Now", Content: "new body", MetaDescription: "meta"})
	if err != nil {
		t.Fatalf("update page: %v", err)
	}
	if page.Title != "Right Now" || page.Content != "new body" || page.MetaDescription != "meta" {
		t.Fatalf("expected updated fields, got %+v", page)
	}

	created, err := svc.UpdatePage("imprint", PageInput{Title: "Imprint", Content: "legal"})
	if err != nil {
		t.Fatalf("update missing page: %v", err)
	}
	if created.ID == 0 || created.Slug != "imprint" {
		t.Fatalf("expected a created row, got %+v", created)
	}

	var count int64
	if err := gdb.Model(&db.Page{}).Count(&count).Error; err != nil {
		t.Fatalf("count pages: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected two rows, got %d", count)
	}
}

func TestListPagesOrdersBySlug(t *testing.T) {
	gdb, cleanup := setupPageServiceTestDB(t)
	defer cleanup()

	svc := NewPageService(gdb)
	if _, err := svc.UpdatePage("zeta", PageInput{Title: "Zeta", Content: "z"}); err != nil {
		t.Fatalf("create zeta: %v", err)
	}
	if _, err := svc.UpdatePage("alpha", PageInput{Title: "Alpha", Content: "a"}); err != nil {
		t.Fatalf("create alpha: %v", err)
	}

	pages, err := svc.ListPages()
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].Slug != "alpha" || pages[1].Slug != "zeta" {
		t.Fatalf("expected slug order, got %q then %q", pages[0].Slug, pages[1].Slug)
	}
}

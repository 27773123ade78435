package main

import (
	"testing"

	"github.com/folio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const minPublishedSeedCount = 4

func setupSeedTestDB(t *testing.T) func() {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:seed-demo?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.Section{}, &db.Page{}, &db.SiteSetting{}, &db.User{},
		&db.Post{}, &db.Tag{}, &db.Category{}, &db.Comment{},
		&db.Project{}, &db.ResumeSection{}, &db.ContactMessage{},
	); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSeedDemoContentFillsEveryPage(t *testing.T) {
	cleanup := setupSeedTestDB(t)
	defer cleanup()

	if err := seedDemoContent(); err != nil {
		t.Fatalf("seedDemoContent: %v", err)
	}

	var posts []db.Post
	if err := db.DB.Find(&posts).Error; err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(posts) != len(demoPosts) {
		t.Fatalf("expected %d posts, got %d", len(demoPosts), len(posts))
	}

	published := 0
	drafts := 0
	for _, post := range posts {
		if post.Slug == "" {
			t.Fatalf("expected slug to be set for post %d", post.ID)
		}
		if post.Excerpt == "" {
			t.Fatalf("expected excerpt to be set for post %d", post.ID)
		}
		if post.Published {
			published++
		} else {
			drafts++
		}
	}
	if published < minPublishedSeedCount {
		t.Fatalf("expected at least %d published posts, got %d", minPublishedSeedCount, published)
	}
	if drafts == 0 {
		t.Fatalf("expected at least one draft post")
	}

	var featured int64
	if err := db.DB.Model(&db.Project{}).Where("featured = ?", true).Count(&featured).Error; err != nil {
		t.Fatalf("failed to count featured projects: %v", err)
	}
	if featured == 0 {
		t.Fatalf("expected at least one featured project")
	}

	var pending int64
	if err := db.DB.Model(&db.Comment{}).Where("approved = ?", false).Count(&pending).Error; err != nil {
		t.Fatalf("failed to count pending comments: %v", err)
	}
	if pending == 0 {
		t.Fatalf("expected a pending comment for the moderation queue")
	}

	var homeSections int64
	if err := db.DB.Model(&db.Section{}).Where("page = ?", "home").Count(&homeSections).Error; err != nil {
		t.Fatalf("failed to count home sections: %v", err)
	}
	if homeSections == 0 {
		t.Fatalf("expected seeded home sections")
	}

	var resumeBlocks int64
	if err := db.DB.Model(&db.ResumeSection{}).Count(&resumeBlocks).Error; err != nil {
		t.Fatalf("failed to count resume blocks: %v", err)
	}
	if resumeBlocks == 0 {
		t.Fatalf("expected seeded resume blocks")
	}

	// A second run must not duplicate anything.
	if err := seedDemoContent(); err != nil {
		t.Fatalf("second seedDemoContent: %v", err)
	}
	var after int64
	if err := db.DB.Model(&db.Post{}).Count(&after).Error; err != nil {
		t.Fatalf("failed to recount posts: %v", err)
	}
	if int(after) != len(demoPosts) {
		t.Fatalf("expected reseeding to be a no-op, got %d posts", after)
	}
}

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

func setupTagServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:tag-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Tag{}, &db.Post{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestTagGetOrCreate(t *testing.T) {
	gdb, cleanup := setupTagServiceTestDB(t)
	defer cleanup()

	svc := NewTagService(gdb)
	tag, err := svc.GetOrCreate("  Distributed Systems  ")
	if err != nil {
		t.Fatalf("get or create tag: %v", err)
	}

	if tag.Name != "Distributed Systems" {
		t.Fatalf("expected trimmed name, got %q", tag.Name)
	}
	if tag.Slug != "distributed-systems" {
		t.Fatalf("expected slug, got %q", tag.Slug)
	}

	again, err := svc.GetOrCreate("Distributed Systems")
	if err != nil {
		t.Fatalf("second get or create: %v", err)
	}
	if again.ID != tag.ID {
		t.Fatalf("expected the same tag back, got id %d want %d", again.ID, tag.ID)
	}

	if _, err := svc.GetOrCreate("   "); !errors.Is(err, ErrTagInvalid) {
		t.Fatalf("expected ErrTagInvalid for blank name, got %v", err)
	}
}

func TestTagListOrdersByName(t *testing.T) {
	gdb, cleanup := setupTagServiceTestDB(t)
	defer cleanup()

	svc := NewTagService(gdb)
	for _, name := range []string{"Zig", "Go", "MLOps"} {
		if _, err := svc.GetOrCreate(name); err != nil {
			t.Fatalf("create tag %q: %v", name, err)
		}
	}

	tags, err := svc.List()
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(tags))
	}
	if tags[0].Name != "Go" || tags[2].Name != "Zig" {
		t.Fatalf("expected name order, got %q first and %q last", tags[0].Name, tags[2].Name)
	}
}

func TestTagUsageCounts(t *testing.T) {
	gdb, cleanup := setupTagServiceTestDB(t)
	defer cleanup()

	posts := NewPostService(gdb)
	if err := gdb.AutoMigrate(&db.Category{}, &db.Comment{}); err != nil {
		t.Fatalf("failed to migrate post deps: %v", err)
	}

	if _, err := posts.Create(PostInput{Title: "Published", Content: "body", Published: true, TagNames: []string{"Go", "LLM"}}); err != nil {
		t.Fatalf("create published post: %v", err)
	}
	if _, err := posts.Create(PostInput{Title: "Draft", Content: "body", TagNames: []string{"Go"}}); err != nil {
		t.Fatalf("create draft post: %v", err)
	}

	svc := NewTagService(gdb)
	usage, err := svc.ListUsage()
	if err != nil {
		t.Fatalf("list usage: %v", err)
	}
	counts := make(map[string]int64, len(usage))
	for _, row := range usage {
		counts[row.Slug] = row.Count
	}
	if counts["go"] != 2 || counts["llm"] != 1 {
		t.Fatalf("expected total usage go=2 llm=1, got %+v", counts)
	}

	published, err := svc.PublishedUsage()
	if err != nil {
		t.Fatalf("published usage: %v", err)
	}
	counts = make(map[string]int64, len(published))
	for _, row := range published {
		counts[row.Slug] = row.Count
	}
	if counts["go"] != 1 || counts["llm"] != 1 {
		t.Fatalf("expected published usage go=1 llm=1, got %+v", counts)
	}
}

func TestTagDeleteKeepsPosts(t *testing.T) {
	gdb, cleanup := setupTagServiceTestDB(t)
	defer cleanup()

	if err := gdb.AutoMigrate(&db.Category{}, &db.Comment{}); err != nil {
		t.Fatalf("failed to migrate post deps: %v", err)
	}

	posts := NewPostService(gdb)
	post, err := posts.Create(PostInput{Title: "Tagged", Content: "body", TagNames: []string{"Go", "LLM"}})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	svc := NewTagService(gdb)
	tag, err := svc.GetBySlug("go")
	if err != nil {
		t.Fatalf("get tag: %v", err)
	}
	if err := svc.Delete(tag.ID); err != nil {
		t.Fatalf("delete tag: %v", err)
	}

	if _, err := svc.GetBySlug("go"); !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected tag to be gone, got %v", err)
	}

	reloaded, err := posts.Get(post.ID)
	if err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if len(reloaded.Tags) != 1 || reloaded.Tags[0].Slug != "llm" {
		t.Fatalf("expected the post to keep its other tag, got %+v", reloaded.Tags)
	}

	if err := svc.Delete(9999); !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

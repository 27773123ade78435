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

func setupProjectServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:project-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Project{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestProjectCreateAssignsNextSortOrder(t *testing.T) {
	gdb, cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)
	first, err := svc.Create(ProjectInput{Title: "Inference Gateway", Description: "routes LLM traffic"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.SortOrder != 0 {
		t.Fatalf("expected first project at order 0, got %d", first.SortOrder)
	}
	if first.Slug != "inference-gateway" {
		t.Fatalf("expected derived slug, got %q", first.Slug)
	}

	second, err := svc.Create(ProjectInput{Title: "RAG Search", Description: "hybrid retrieval"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.SortOrder != 1 {
		t.Fatalf("expected appended order 1, got %d", second.SortOrder)
	}

	order := 10
	pinned, err := svc.Create(ProjectInput{Title: "Pinned", Description: "explicit order", SortOrder: &order})
	if err != nil {
		t.Fatalf("create pinned: %v", err)
	}
	if pinned.SortOrder != 10 {
		t.Fatalf("expected explicit order 10, got %d", pinned.SortOrder)
	}
}

func TestProjectCreateValidates(t *testing.T) {
	gdb, cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)
	if _, err := svc.Create(ProjectInput{Title: " ", Description: "x"}); !errors.Is(err, ErrProjectInvalid) {
		t.Fatalf("expected ErrProjectInvalid for blank title, got %v", err)
	}
	if _, err := svc.Create(ProjectInput{Title: "X", Description: " "}); !errors.Is(err, ErrProjectInvalid) {
		t.Fatalf("expected ErrProjectInvalid for blank description, got %v", err)
	}

	if _, err := svc.Create(ProjectInput{Title: "Taken", Description: "one"}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := svc.Create(ProjectInput{Title: "Taken", Description: "two"}); !errors.Is(err, ErrProjectExists) {
		t.Fatalf("expected ErrProjectExists, got %v", err)
	}
}

func TestProjectListOrdersFeaturedFirst(t *testing.T) {
	gdb, cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)
	if _, err := svc.Create(ProjectInput{Title: "Plain", Description: "x"}); err != nil {
		t.Fatalf("create plain: %v", err)
	}
	if _, err := svc.Create(ProjectInput{Title: "Star", Description: "x", Featured: true}); err != nil {
		t.Fatalf("create star: %v", err)
	}

	projects, err := svc.List()
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "Star" {
		t.Fatalf("expected the featured project first, got %q", projects[0].Title)
	}

	featured, err := svc.ListFeatured(5)
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if len(featured) != 1 || featured[0].Title != "Star" {
		t.Fatalf("expected only the featured project, got %+v", featured)
	}
}

func TestProjectUpdate(t *testing.T) {
	gdb, cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)
	project, err := svc.Create(ProjectInput{Title: "Old Name", Description: "desc"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	updated, err := svc.Update(project.ID, ProjectInput{
		Title:       "New Name",
		Description: "desc",
		TechStack:   "Go, sqlite",
		Metrics:     "40% latency reduction",
		Featured:    true,
	})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}

	if updated.Title != "New Name" || updated.Slug != "new-name" {
		t.Fatalf("expected renamed project with fresh slug, got %+v", updated)
	}
	if !updated.Featured || updated.TechStack != "Go, sqlite" {
		t.Fatalf("expected updated fields, got %+v", updated)
	}
	if updated.SortOrder != project.SortOrder {
		t.Fatalf("expected nil sort order to keep %d, got %d", project.SortOrder, updated.SortOrder)
	}

	other, err := svc.Create(ProjectInput{Title: "Other", Description: "x"})
	if err != nil {
		t.Fatalf("create other: %v", err)
	}
	if _, err := svc.Update(other.ID, ProjectInput{Title: "New Name", Description: "x"}); !errors.Is(err, ErrProjectExists) {
		t.Fatalf("expected ErrProjectExists on slug collision, got %v", err)
	}

	if _, err := svc.Update(9999, ProjectInput{Title: "x", Description: "y"}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectDeleteFreesSlug(t *testing.T) {
	gdb, cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)
	project, err := svc.Create(ProjectInput{Title: "Gone Soon", Description: "x"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	if err := svc.Delete(project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if err := svc.Delete(project.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound on second delete, got %v", err)
	}

	if _, err := svc.Create(ProjectInput{Title: "Gone Soon", Description: "back"}); err != nil {
		t.Fatalf("expected slug to be reusable, got %v", err)
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 project, got %d", count)
	}
}

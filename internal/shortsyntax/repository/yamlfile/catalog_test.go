package yamlfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"task-short-syntax/internal/model"
	"task-short-syntax/internal/shortsyntax/repository"
	"task-short-syntax/internal/shortsyntax/repository/yamlfile"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

const sampleCatalog = `
tags:
  - id: t-work
    title: work
  - id: t-urgent
    title: " Urgent "
projects:
  - id: p-web
    title: Website Redesign
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestSnapshot(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	repo := yamlfile.New(path, time.Hour, &mockLogger{})

	c, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(c.Tags) != 2 || c.Tags[1] != (model.Tag{ID: "t-urgent", Title: "Urgent"}) {
		t.Errorf("tags = %+v", c.Tags)
	}
	if len(c.Projects) != 1 || c.Projects[0].Title != "Website Redesign" {
		t.Errorf("projects = %+v", c.Projects)
	}
}

func TestSnapshotCachedUntilTTL(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	repo := yamlfile.New(path, time.Hour, &mockLogger{})
	ctx := context.Background()

	if _, err := repo.Snapshot(ctx); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if err := os.WriteFile(path, []byte("tags: []\nprojects: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(c.Tags) != 2 {
		t.Errorf("expected cached snapshot, got %d tags", len(c.Tags))
	}

	// callers cannot corrupt the cached copy
	c.Tags[0].Title = "changed"
	again, _ := repo.Snapshot(ctx)
	if again.Tags[0].Title != "work" {
		t.Errorf("cached snapshot was mutated: %+v", again.Tags[0])
	}
}

func TestSnapshotReloadsAfterTTL(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	repo := yamlfile.New(path, 20*time.Millisecond, &mockLogger{})
	ctx := context.Background()

	if _, err := repo.Snapshot(ctx); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if err := os.WriteFile(path, []byte("tags:\n  - id: t-new\n    title: new\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(60 * time.Millisecond)

	c, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(c.Tags) != 1 || c.Tags[0].ID != "t-new" {
		t.Errorf("tags after reload = %+v", c.Tags)
	}
	if c.Projects == nil {
		t.Error("projects should be empty, not nil")
	}
}

func TestSnapshotEmptyPath(t *testing.T) {
	repo := yamlfile.New("", 0, &mockLogger{})

	c, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if c.Tags == nil || c.Projects == nil || len(c.Tags)+len(c.Projects) != 0 {
		t.Errorf("expected empty non-nil catalog, got %+v", c)
	}
}

func TestSnapshotErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: repository.ErrCatalogRead,
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeCatalog(t, "tags: [") },
			wantErr: repository.ErrCatalogDecode,
		},
		{
			name: "duplicate id",
			path: func(t *testing.T) string {
				return writeCatalog(t, "projects:\n  - {id: a, title: A}\n  - {id: a, title: B}\n")
			},
			wantErr: repository.ErrCatalogInvalid,
		},
		{
			name:    "missing title",
			path:    func(t *testing.T) string { return writeCatalog(t, "tags:\n  - id: x\n") },
			wantErr: repository.ErrCatalogInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := yamlfile.New(tt.path(t), time.Minute, &mockLogger{})
			_, err := repo.Snapshot(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	c, err := yamlfile.Decode([]byte("  \n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Tags == nil || c.Projects == nil {
		t.Errorf("expected non-nil lists, got %+v", c)
	}
}

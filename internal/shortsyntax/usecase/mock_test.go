package usecase

import (
	"context"
	"testing"
	"time"

	"task-short-syntax/internal/shortsyntax/repository"
	"task-short-syntax/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockCatalog struct {
	catalog repository.Catalog
	err     error
	calls   int
}

func (m *mockCatalog) Snapshot(ctx context.Context) (repository.Catalog, error) {
	m.calls++
	return m.catalog, m.err
}

// fixedNow is Wednesday, May 1, 2024 15:30 UTC.
var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

const todayKey = "2024-05-01"

func newTestUseCase(t *testing.T, catalog repository.CatalogRepository) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	uc := New(&mockLogger{}, parser, catalog)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

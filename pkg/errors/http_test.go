package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "task-short-syntax/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	base := pkgErrors.NewHTTPError(http.StatusConflict, "taken")

	got, ok := pkgErrors.AsHTTPError(fmt.Errorf("create: %w", base))
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if got.StatusCode != http.StatusConflict || got.Error() != "taken" {
		t.Errorf("unexpected error: %+v", got)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not be an HTTPError")
	}
}

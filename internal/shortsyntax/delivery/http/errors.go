package http

import (
	"errors"
	"net/http"

	"task-short-syntax/internal/shortsyntax"
	pkgErrors "task-short-syntax/pkg/errors"
)

var (
	errWrongBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errMissingRefID = pkgErrors.NewHTTPError(http.StatusBadRequest, "every tag and project needs an id")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, shortsyntax.ErrInvalidTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, shortsyntax.ErrInvalidTitle.Error())
	case errors.Is(err, shortsyntax.ErrCatalog):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, shortsyntax.ErrCatalog.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

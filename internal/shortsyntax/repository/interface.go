package repository

import (
	"context"

	"task-short-syntax/internal/model"
)

// CatalogRepository supplies read-only snapshots of the reference data the
// parser resolves directives against.
//
//go:generate mockery --name CatalogRepository
type CatalogRepository interface {
	Snapshot(ctx context.Context) (Catalog, error)
}

// Catalog is a point-in-time copy of known tags and projects. Both slices are
// non-nil, possibly empty.
type Catalog struct {
	Tags     []model.Tag
	Projects []model.Project
}

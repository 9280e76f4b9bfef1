package main

import (
	"context"
	"strings"

	"task-short-syntax/config"
	"task-short-syntax/internal/shortsyntax/repository"
	catalogRepo "task-short-syntax/internal/shortsyntax/repository/yamlfile"
	"task-short-syntax/pkg/log"
)

// newCatalog returns nil when no catalog path is configured, so omitted
// tag and project lists keep their extractors disabled.
func newCatalog(ctx context.Context, cfg config.ShortSyntaxConfig, l log.Logger) repository.CatalogRepository {
	if strings.TrimSpace(cfg.CatalogPath) == "" {
		l.Info(ctx, "No catalog configured")
		return nil
	}

	catalog := catalogRepo.New(cfg.CatalogPath, cfg.CatalogTTL, l)
	if _, err := catalog.Snapshot(ctx); err != nil {
		l.Warnf(ctx, "Catalog %s not loadable yet: %v", cfg.CatalogPath, err)
	}
	return catalog
}

package yamlfile

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-short-syntax/internal/shortsyntax/repository"
	pkgLog "task-short-syntax/pkg/log"
)

const snapshotKey = "catalog"

type implRepository struct {
	path  string
	l     pkgLog.Logger
	cache *expirable.LRU[string, repository.Catalog]
}

// New creates a CatalogRepository backed by a YAML snapshot file. The decoded
// file is served from memory until ttl elapses; a ttl <= 0 loads it once.
// An empty path yields an empty catalog.
func New(path string, ttl time.Duration, l pkgLog.Logger) repository.CatalogRepository {
	return &implRepository{
		path:  path,
		l:     l,
		cache: expirable.NewLRU[string, repository.Catalog](1, nil, ttl),
	}
}

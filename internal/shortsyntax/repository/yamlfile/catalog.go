package yamlfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"task-short-syntax/internal/model"
	"task-short-syntax/internal/shortsyntax/repository"
)

type entry struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

type catalogFile struct {
	Tags     []entry `yaml:"tags"`
	Projects []entry `yaml:"projects"`
}

func (r *implRepository) Snapshot(ctx context.Context) (repository.Catalog, error) {
	if c, ok := r.cache.Get(snapshotKey); ok {
		return clone(c), nil
	}

	c, err := r.load()
	if err != nil {
		r.l.Errorf(ctx, "shortsyntax.repository.yamlfile.Snapshot: %v", err)
		return repository.Catalog{}, err
	}
	r.l.Debugf(ctx, "shortsyntax.repository.yamlfile.Snapshot: loaded %d tags, %d projects from %q",
		len(c.Tags), len(c.Projects), r.path)

	r.cache.Add(snapshotKey, c)
	return clone(c), nil
}

func (r *implRepository) load() (repository.Catalog, error) {
	empty := repository.Catalog{Tags: []model.Tag{}, Projects: []model.Project{}}
	if strings.TrimSpace(r.path) == "" {
		return empty, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return repository.Catalog{}, fmt.Errorf("%w: %v", repository.ErrCatalogRead, err)
	}
	return Decode(data)
}

// Decode parses a YAML snapshot. Every entry needs an id and a title, and ids
// are unique per list. An empty document is an empty catalog.
func Decode(data []byte) (repository.Catalog, error) {
	c := repository.Catalog{Tags: []model.Tag{}, Projects: []model.Project{}}
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return repository.Catalog{}, fmt.Errorf("%w: %v", repository.ErrCatalogDecode, err)
	}

	if err := validate("tags", f.Tags); err != nil {
		return repository.Catalog{}, err
	}
	if err := validate("projects", f.Projects); err != nil {
		return repository.Catalog{}, err
	}

	for _, e := range f.Tags {
		c.Tags = append(c.Tags, model.Tag{ID: strings.TrimSpace(e.ID), Title: strings.TrimSpace(e.Title)})
	}
	for _, e := range f.Projects {
		c.Projects = append(c.Projects, model.Project{ID: strings.TrimSpace(e.ID), Title: strings.TrimSpace(e.Title)})
	}
	return c, nil
}

func validate(list string, entries []entry) error {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return fmt.Errorf("%w: %s[%d] has no id", repository.ErrCatalogInvalid, list, i)
		}
		if strings.TrimSpace(e.Title) == "" {
			return fmt.Errorf("%w: %s[%d] (%s) has no title", repository.ErrCatalogInvalid, list, i, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s[%d] duplicates id %s", repository.ErrCatalogInvalid, list, i, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func clone(c repository.Catalog) repository.Catalog {
	return repository.Catalog{
		Tags:     slices.Clone(c.Tags),
		Projects: slices.Clone(c.Projects),
	}
}

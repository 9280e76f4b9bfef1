package usecase

import (
	"time"

	"task-short-syntax/internal/shortsyntax/repository"
	"task-short-syntax/pkg/datemath"
	pkgLog "task-short-syntax/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	dateParser *datemath.Parser
	catalog    repository.CatalogRepository
	now        func() time.Time
	worklogKey func(time.Time) string
}

// New creates a short-syntax UseCase. dateParser is cloned and extended with
// the short-syntax date rules; the caller's parser is left untouched. catalog
// may be nil, in which case ParseWithCatalog behaves like Parse.
func New(
	l pkgLog.Logger,
	dateParser *datemath.Parser,
	catalog repository.CatalogRepository,
) *implUseCase {
	parser := dateParser.Clone()
	parser.AddRules(shortDateRules...)

	return &implUseCase{
		l:          l,
		dateParser: parser,
		catalog:    catalog,
		now:        time.Now,
		worklogKey: parser.WorklogKey,
	}
}

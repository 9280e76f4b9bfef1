package shortsyntax

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse extracts short-syntax directives from input.Task.Title using only
	// the reference data carried by input. A nil output means nothing to change.
	Parse(ctx context.Context, input ParseInput) (*ParseOutput, error)

	// ParseWithCatalog fills tags and projects missing from input with the
	// current catalog snapshot, then behaves like Parse.
	ParseWithCatalog(ctx context.Context, input ParseInput) (*ParseOutput, error)

	// Patterns returns the directive patterns used for title highlighting.
	Patterns() PatternsOutput
}

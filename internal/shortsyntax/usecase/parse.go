package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"task-short-syntax/internal/model"
	"task-short-syntax/internal/shortsyntax"
)

// parseRun is the immutable context of one Parse call.
type parseRun struct {
	ctx   context.Context
	input shortsyntax.ParseInput
	now   time.Time
}

// parseState is threaded through the pipeline. title starts as the raw title
// and always reflects the latest title change.
type parseState struct {
	title        string
	changes      model.TaskChanges
	newTagTitles []string
	projectID    string

	// timeAnnotation is the trailing time text already extracted, if any.
	timeAnnotation string
}

type step func(run parseRun, st parseState) parseState

// pipeline returns the extractors in execution order. The time extractor runs
// again last because removing a tag can expose a trailing time token.
func (uc *implUseCase) pipeline() []step {
	return []step{
		uc.timeSpentStep,
		uc.scheduledDateStep,
		uc.projectStep,
		uc.tagStep,
		uc.timeSpentStep,
	}
}

// Parse runs every extractor over the task title and merges their changes.
func (uc *implUseCase) Parse(ctx context.Context, input shortsyntax.ParseInput) (*shortsyntax.ParseOutput, error) {
	if input.Task.Title == "" {
		return nil, nil
	}
	if !utf8.ValidString(input.Task.Title) {
		uc.l.Warnf(ctx, "shortsyntax.Parse: rejecting invalid title for task %q", input.Task.ID)
		return nil, shortsyntax.ErrInvalidTitle
	}

	run := parseRun{ctx: ctx, input: input, now: uc.now()}
	st := parseState{title: input.Task.Title}
	for _, s := range uc.pipeline() {
		st = s(run, st)
	}

	if st.changes.IsEmpty() {
		return nil, nil
	}

	return &shortsyntax.ParseOutput{
		TaskChanges:  st.changes,
		NewTagTitles: st.newTagTitles,
		RemindAt:     nil,
		ProjectID:    st.projectID,
	}, nil
}

// ParseWithCatalog fills missing reference lists from the catalog snapshot.
func (uc *implUseCase) ParseWithCatalog(ctx context.Context, input shortsyntax.ParseInput) (*shortsyntax.ParseOutput, error) {
	if uc.catalog != nil && (input.Tags == nil || input.Projects == nil) {
		snap, err := uc.catalog.Snapshot(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "shortsyntax.ParseWithCatalog: catalog snapshot: %v", err)
			return nil, fmt.Errorf("%w: %v", shortsyntax.ErrCatalog, err)
		}
		if input.Tags == nil {
			input.Tags = snap.Tags
		}
		if input.Projects == nil {
			input.Projects = snap.Projects
		}
	}
	return uc.Parse(ctx, input)
}

// Patterns returns the directive regexp sources.
func (uc *implUseCase) Patterns() shortsyntax.PatternsOutput {
	return shortsyntax.PatternsOutput{
		Project: shortsyntax.ProjectRegex.String(),
		Tag:     shortsyntax.TagsRegex.String(),
		Due:     shortsyntax.DueRegex.String(),
		Time:    shortsyntax.TimeRegex.String(),
	}
}

package shortsyntax

import "task-short-syntax/internal/model"

// --- UseCase Inputs ---

// ParseInput is one parse request. A nil Tags or Projects slice means the
// reference list was not supplied, which disables the matching extractor.
type ParseInput struct {
	Task     model.Task
	Tags     []model.Tag
	Projects []model.Project
}

// --- UseCase Outputs ---

// ParseOutput is the merged result of every extractor.
type ParseOutput struct {
	TaskChanges model.TaskChanges
	// NewTagTitles are #tags with no existing Tag. The caller creates them
	// and attaches the resulting ids.
	NewTagTitles []string
	// RemindAt is reserved for reminder extraction and always nil.
	RemindAt  *int64
	ProjectID string
}

// PatternsOutput carries the regexp sources of each directive.
type PatternsOutput struct {
	Project string
	Tag     string
	Due     string
	Time    string
}

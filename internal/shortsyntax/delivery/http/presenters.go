package http

import (
	"strings"
	"time"

	"task-short-syntax/internal/model"
	"task-short-syntax/internal/shortsyntax"
	"task-short-syntax/pkg/duration"
	"task-short-syntax/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ParentID string `json:"parent_id"`
	IssueID  string `json:"issue_id"`
	// TagIDs left out (or null) disables tag extraction.
	TagIDs         []string         `json:"tag_ids"`
	TimeSpentOnDay map[string]int64 `json:"time_spent_on_day"`
}

type refReq struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type parseReq struct {
	Task taskReq `json:"task"`
	// Tags and Projects left out (or null) are filled from the catalog.
	Tags     []refReq `json:"tags"`
	Projects []refReq `json:"projects"`
}

func (r parseReq) validate() error {
	for _, ref := range append(append([]refReq{}, r.Tags...), r.Projects...) {
		if strings.TrimSpace(ref.ID) == "" {
			return errMissingRefID
		}
	}
	return nil
}

func (r parseReq) toInput() shortsyntax.ParseInput {
	in := shortsyntax.ParseInput{
		Task: model.Task{
			ID:             r.Task.ID,
			Title:          r.Task.Title,
			TagIDs:         r.Task.TagIDs,
			ParentID:       r.Task.ParentID,
			IssueID:        r.Task.IssueID,
			TimeSpentOnDay: r.Task.TimeSpentOnDay,
		},
	}
	if r.Tags != nil {
		in.Tags = make([]model.Tag, len(r.Tags))
		for i, t := range r.Tags {
			in.Tags[i] = model.Tag{ID: t.ID, Title: t.Title}
		}
	}
	if r.Projects != nil {
		in.Projects = make([]model.Project, len(r.Projects))
		for i, p := range r.Projects {
			in.Projects[i] = model.Project{ID: p.ID, Title: p.Title}
		}
	}
	return in
}

// --- Response DTOs ---

type taskChangesResp struct {
	Title            *string            `json:"title,omitempty"`
	TagIDs           []string           `json:"tag_ids,omitempty"`
	TimeSpentOnDay   map[string]int64   `json:"time_spent_on_day,omitempty"`
	TimeEstimate     *int64             `json:"time_estimate,omitempty"`
	TimeEstimateText string             `json:"time_estimate_text,omitempty"`
	PlannedAt        *int64             `json:"planned_at,omitempty"`
	PlannedAtText    *response.DateTime `json:"planned_at_text,omitempty"`
}

type parseResp struct {
	Changed      bool             `json:"changed"`
	TaskChanges  *taskChangesResp `json:"task_changes,omitempty"`
	NewTagTitles []string         `json:"new_tag_titles"`
	ProjectID    string           `json:"project_id,omitempty"`
	RemindAt     *int64           `json:"remind_at"`
}

func (h *handler) newParseResp(out *shortsyntax.ParseOutput) parseResp {
	if out == nil {
		return parseResp{NewTagTitles: []string{}}
	}

	ch := out.TaskChanges
	changes := &taskChangesResp{
		Title:          ch.Title,
		TagIDs:         ch.TagIDs,
		TimeSpentOnDay: ch.TimeSpentOnDay,
		TimeEstimate:   ch.TimeEstimate,
		PlannedAt:      ch.PlannedAt,
	}
	if ch.TimeEstimate != nil {
		changes.TimeEstimateText = duration.Format(*ch.TimeEstimate)
	}
	if ch.PlannedAt != nil {
		planned := response.DateTime(time.UnixMilli(*ch.PlannedAt).In(h.loc))
		changes.PlannedAtText = &planned
	}

	newTags := out.NewTagTitles
	if newTags == nil {
		newTags = []string{}
	}
	return parseResp{
		Changed:      true,
		TaskChanges:  changes,
		NewTagTitles: newTags,
		ProjectID:    out.ProjectID,
		RemindAt:     out.RemindAt,
	}
}

type patternsResp struct {
	Project string `json:"project"`
	Tag     string `json:"tag"`
	Due     string `json:"due"`
	Time    string `json:"time"`
}

func (h *handler) newPatternsResp(out shortsyntax.PatternsOutput) patternsResp {
	return patternsResp{
		Project: out.Project,
		Tag:     out.Tag,
		Due:     out.Due,
		Time:    out.Time,
	}
}

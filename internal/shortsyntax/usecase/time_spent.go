package usecase

import (
	"strings"
	"time"

	"task-short-syntax/internal/model"
	"task-short-syntax/internal/shortsyntax"
	"task-short-syntax/pkg/duration"
)

func (uc *implUseCase) timeSpentStep(run parseRun, st parseState) parseState {
	prior := st.changes.TimeSpentOnDay
	if prior == nil {
		prior = run.input.Task.TimeSpentOnDay
	}

	changes, annotation, ok := uc.parseTimeSpent(st.title, prior, run.now)
	if !ok {
		return st
	}
	// a second run may only strip the annotation already taken, which the
	// date step puts back when it rewrites the raw title
	if st.timeAnnotation != "" && !strings.EqualFold(annotation, st.timeAnnotation) {
		uc.l.Debugf(run.ctx, "shortsyntax: ignoring second time annotation %q after %q", annotation, st.timeAnnotation)
		return st
	}
	uc.l.Debugf(run.ctx, "shortsyntax: time annotation estimate=%d spent=%v", *changes.TimeEstimate, changes.TimeSpentOnDay)

	st.changes = st.changes.Merge(changes)
	st.title = *changes.Title
	st.timeAnnotation = annotation
	return st
}

// parseTimeSpent extracts a trailing "[spent/]estimate" annotation. Spent time
// is stored under today's work-log key on a copy of prior. An annotation that
// directly follows another one ("Task 1h 2h") is ambiguous and left alone, as
// are amounts too large to represent.
func (uc *implUseCase) parseTimeSpent(title string, prior map[string]int64, now time.Time) (model.TaskChanges, string, bool) {
	loc := shortsyntax.TimeRegex.FindStringSubmatchIndex(title)
	if loc == nil {
		return model.TaskChanges{}, "", false
	}

	newTitle := strings.TrimSpace(title[:loc[0]] + title[loc[1]:])
	if shortsyntax.TimeRegex.MatchString(newTitle) {
		return model.TaskChanges{}, "", false
	}

	estimate, err := duration.Parse(title[loc[4]:loc[5]])
	if err != nil {
		return model.TaskChanges{}, "", false
	}

	var changes model.TaskChanges
	if loc[2] >= 0 {
		spentMs, err := duration.Parse(title[loc[2]:loc[3]])
		if err != nil {
			return model.TaskChanges{}, "", false
		}
		spent := make(map[string]int64, len(prior)+1)
		for day, ms := range prior {
			spent[day] = ms
		}
		spent[uc.worklogKey(now)] = spentMs
		changes.TimeSpentOnDay = spent
	}

	changes.TimeEstimate = &estimate
	changes.Title = &newTitle
	return changes, strings.TrimSpace(title[loc[0]:loc[1]]), true
}

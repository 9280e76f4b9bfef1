package usecase

import (
	"regexp"
	"strings"
	"time"

	"task-short-syntax/internal/model"
	"task-short-syntax/internal/shortsyntax"
	"task-short-syntax/pkg/datemath"
)

// shortDateRules add the "tod" and "tom" abbreviations, either at the start
// of the title or as an @ directive.
var shortDateRules = []datemath.Rule{
	{
		Name:    "short-tomorrow",
		Pattern: regexp.MustCompile(`(?i)(?:^|\s@)(tom)\b`),
		Group:   1,
		Extract: func(ctx datemath.Context, _ []string) *datemath.Components {
			return datemath.NewComponents(ctx.Ref).Assign(datemath.Day, ctx.Ref.Day()+1)
		},
	},
	{
		Name:    "short-today",
		Pattern: regexp.MustCompile(`(?i)(?:^|\s@)(tod)\b`),
		Group:   1,
		Extract: func(ctx datemath.Context, _ []string) *datemath.Components {
			return datemath.NewComponents(ctx.Ref).Assign(datemath.Day, ctx.Ref.Day())
		},
	},
}

func (uc *implUseCase) scheduledDateStep(run parseRun, st parseState) parseState {
	// the date engine always sees the title as typed
	changes, ok := uc.parseScheduledDate(run.input.Task.Title, run.now)
	if !ok {
		return st
	}
	uc.l.Debugf(run.ctx, "shortsyntax: planned at %d", *changes.PlannedAt)

	st.changes = st.changes.Merge(changes)
	st.title = *changes.Title
	return st
}

// parseScheduledDate resolves the first date expression of a title carrying
// an @ directive. Unresolvable dates leave the title untouched.
func (uc *implUseCase) parseScheduledDate(title string, now time.Time) (model.TaskChanges, bool) {
	if len(shortsyntax.FindDirectives(title, shortsyntax.SigilDue)) == 0 {
		return model.TaskChanges{}, false
	}

	results := uc.dateParser.ParseText(title, now, datemath.Options{ForwardDate: true})
	if len(results) == 0 {
		return model.TaskChanges{}, false
	}

	r := results[0]
	planned := r.Date()
	if !r.Start.IsCertain(datemath.Hour) {
		planned = uc.dateParser.EndOfDay(planned)
	} else if planned.Before(now.Truncate(time.Second)) {
		planned = planned.AddDate(0, 0, 1)
	}
	plannedAt := planned.UnixMilli()

	newTitle := strings.TrimSpace(strings.Replace(title, string(shortsyntax.SigilDue)+r.Text, "", 1))
	return model.TaskChanges{
		Title:     &newTitle,
		PlannedAt: &plannedAt,
	}, true
}

package usecase

import (
	"strings"

	"task-short-syntax/internal/model"
	"task-short-syntax/internal/shortsyntax"
)

func (uc *implUseCase) projectStep(run parseRun, st parseState) parseState {
	task := run.input.Task
	// issue-linked tasks keep the project of their issue
	if task.IssueID != "" || len(run.input.Projects) == 0 {
		return st
	}

	title, project, ok := parseProject(st.title, run.input.Projects)
	if !ok {
		return st
	}
	uc.l.Debugf(run.ctx, "shortsyntax: project %q resolved to %s", project.Title, project.ID)

	st.changes.Title = &title
	st.title = title
	st.projectID = project.ID
	return st
}

// parseProject resolves the first + directive against projects: the whole
// phrase first, then only its first word. The first project in list order
// whose normalized title starts with the normalized phrase wins.
func parseProject(title string, projects []model.Project) (string, model.Project, bool) {
	dirs := shortsyntax.FindDirectives(title, shortsyntax.SigilProject)
	if len(dirs) == 0 {
		return "", model.Project{}, false
	}
	d := dirs[0]
	phrase := strings.TrimRightFunc(d.Value(), isSpace)

	if p, ok := findProject(projects, phrase); ok {
		return cutSpan(title, d.Start, d.Start+1+len(phrase)), p, true
	}

	words := strings.Fields(phrase)
	if len(words) == 0 {
		return "", model.Project{}, false
	}
	first := words[0]
	if p, ok := findProject(projects, first); ok {
		end := d.Start + 1 + strings.Index(phrase, first) + len(first)
		return cutSpan(title, d.Start, end), p, true
	}
	return "", model.Project{}, false
}

func findProject(projects []model.Project, phrase string) (model.Project, bool) {
	key := normalizeTitle(phrase)
	if key == "" {
		return model.Project{}, false
	}
	for _, p := range projects {
		if strings.HasPrefix(normalizeTitle(p.Title), key) {
			return p, true
		}
	}
	return model.Project{}, false
}

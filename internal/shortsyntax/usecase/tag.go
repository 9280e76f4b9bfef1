package usecase

import (
	"strings"
	"unicode/utf8"

	"task-short-syntax/internal/model"
	"task-short-syntax/internal/shortsyntax"
)

// minTagIndex keeps titles like "#123 fix thing" from turning their leading
// issue number into a tag: a tag must start after this character index.
const minTagIndex = 4

type tagChanges struct {
	title        string
	tagIDs       []string // nil when no id was added
	newTagTitles []string
}

func (uc *implUseCase) tagStep(run parseRun, st parseState) parseState {
	in := run.input
	if in.Task.IsSubTask() || in.Task.TagIDs == nil || in.Tags == nil {
		return st
	}

	tc, ok := parseTags(st.title, in.Task.TagIDs, in.Tags)
	if !ok {
		return st
	}
	uc.l.Debugf(run.ctx, "shortsyntax: tags added=%v new=%v", tc.tagIDs, tc.newTagTitles)

	st.changes = st.changes.Merge(model.TaskChanges{Title: &tc.title, TagIDs: tc.tagIDs})
	st.title = tc.title
	st.newTagTitles = tc.newTagTitles
	return st
}

// parseTags resolves every # directive against tags by case-insensitive title.
// Known tags not yet on the task are appended to taskTagIDs; unknown ones
// become creation candidates. All resolved directives are cut from the title.
func parseTags(title string, taskTagIDs []string, tags []model.Tag) (tagChanges, bool) {
	trimmed := strings.TrimSpace(title)

	type tagToken struct {
		value      string
		start, end int
	}
	var tokens []tagToken
	for _, d := range shortsyntax.FindDirectives(title, shortsyntax.SigilTag) {
		raw := strings.TrimRightFunc(d.Value(), isSpace)
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		idx := strings.LastIndex(trimmed, value)
		if utf8.RuneCountInString(trimmed[:idx]) <= minTagIndex {
			continue
		}
		tokens = append(tokens, tagToken{value: value, start: d.Start, end: d.Start + 1 + len(raw)})
	}
	if len(tokens) == 0 {
		return tagChanges{}, false
	}

	var added, created []string
	for _, tok := range tokens {
		tag, ok := findTag(tags, tok.value)
		if !ok {
			if !contains(created, tok.value) {
				created = append(created, tok.value)
			}
			continue
		}
		if !contains(taskTagIDs, tag.ID) && !contains(added, tag.ID) {
			added = append(added, tag.ID)
		}
	}

	newTitle := title
	for i := len(tokens) - 1; i >= 0; i-- {
		newTitle = newTitle[:tokens[i].start] + newTitle[tokens[i].end:]
	}

	tc := tagChanges{
		title:        strings.TrimSpace(newTitle),
		newTagTitles: created,
	}
	if len(added) > 0 {
		tc.tagIDs = append(append(make([]string, 0, len(taskTagIDs)+len(added)), taskTagIDs...), added...)
	}
	return tc, true
}

func findTag(tags []model.Tag, title string) (model.Tag, bool) {
	for _, t := range tags {
		if strings.EqualFold(t.Title, title) {
			return t, true
		}
	}
	return model.Tag{}, false
}

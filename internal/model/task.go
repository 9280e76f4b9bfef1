package model

// Task is the slice of a task entity the short-syntax parser reads.
type Task struct {
	ID             string
	Title          string
	TagIDs         []string         // nil when the caller did not supply the task's tags
	ParentID       string           // non-empty for sub-tasks
	IssueID        string           // non-empty for tasks linked to an issue tracker
	TimeSpentOnDay map[string]int64 // work-log day key -> milliseconds
}

// IsSubTask reports whether the task has a parent.
func (t Task) IsSubTask() bool {
	return t.ParentID != ""
}

// Tag is a context tag. Titles match case-insensitively.
type Tag struct {
	ID    string
	Title string
}

// Project groups tasks. Titles match by case-insensitive prefix.
type Project struct {
	ID    string
	Title string
}

// TaskChanges is a partial task update. Nil fields are left untouched.
type TaskChanges struct {
	Title          *string
	TagIDs         []string
	TimeSpentOnDay map[string]int64
	TimeEstimate   *int64 // milliseconds
	PlannedAt      *int64 // epoch milliseconds
}

// IsEmpty reports whether no field is set.
func (c TaskChanges) IsEmpty() bool {
	return c.Title == nil &&
		c.TagIDs == nil &&
		c.TimeSpentOnDay == nil &&
		c.TimeEstimate == nil &&
		c.PlannedAt == nil
}

// Merge returns c overlaid with every field set in next.
func (c TaskChanges) Merge(next TaskChanges) TaskChanges {
	if next.Title != nil {
		c.Title = next.Title
	}
	if next.TagIDs != nil {
		c.TagIDs = next.TagIDs
	}
	if next.TimeSpentOnDay != nil {
		c.TimeSpentOnDay = next.TimeSpentOnDay
	}
	if next.TimeEstimate != nil {
		c.TimeEstimate = next.TimeEstimate
	}
	if next.PlannedAt != nil {
		c.PlannedAt = next.PlannedAt
	}
	return c
}

package datemath

import (
	"regexp"
	"time"
)

var mergeGap = regexp.MustCompile(`(?i)^\s*(?:T|at|after|before|on|of|,|-)?\s*$`)

// removeOverlaps keeps the longest of any overlapping results. Input must be
// sorted by index.
func removeOverlaps(results []Result) []Result {
	if len(results) < 2 {
		return results
	}
	out := []Result{results[0]}
	for _, cur := range results[1:] {
		prev := &out[len(out)-1]
		if cur.Index < prev.Index+len(prev.Text) {
			if len(cur.Text) > len(prev.Text) {
				*prev = cur
			}
			continue
		}
		out = append(out, cur)
	}
	return out
}

// mergeDateTime joins a date-only result with an adjacent time-only result,
// in either order, when only a connector word separates them.
func mergeDateTime(text string, results []Result) []Result {
	if len(results) < 2 {
		return results
	}
	var out []Result
	for i := 0; i < len(results); i++ {
		if i+1 < len(results) {
			a, b := results[i], results[i+1]
			gap := text[a.Index+len(a.Text) : b.Index]
			if mergeGap.MatchString(gap) {
				var merged *Components
				switch {
				case a.Start.isOnlyDate() && b.Start.isOnlyTime():
					merged = withTime(a.Start, b.Start)
				case a.Start.isOnlyTime() && b.Start.isOnlyDate():
					merged = withTime(b.Start, a.Start)
				}
				if merged != nil {
					out = append(out, Result{
						Index: a.Index,
						Text:  text[a.Index : b.Index+len(b.Text)],
						Start: merged,
					})
					i++
					continue
				}
			}
		}
		out = append(out, results[i])
	}
	return out
}

func withTime(date, clock *Components) *Components {
	merged := date.clone()
	for _, comp := range []Component{Hour, Minute, Second} {
		if clock.IsCertain(comp) {
			merged.Assign(comp, clock.Get(comp))
		} else {
			merged.Imply(comp, clock.Get(comp))
		}
	}
	return merged
}

// forward moves results that resolved into the past to their next occurrence.
func forward(c *Components, ref time.Time) {
	switch {
	case c.isOnlyTime():
		if c.Date().Before(ref) {
			c.impliedDate(c.Date().AddDate(0, 0, 1))
		}
	case c.isOnlyWeekday():
		if dayBefore(c.Date(), ref) {
			c.impliedDate(c.Date().AddDate(0, 0, 7))
		}
	case c.isOnlyDayMonth():
		if dayBefore(c.Date(), ref) {
			c.Imply(Year, c.Get(Year)+1)
		}
	}
}

func dayBefore(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	return time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).Before(time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC))
}

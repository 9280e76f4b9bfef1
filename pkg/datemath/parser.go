package datemath

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DateFormatISO is the layout of work-log day keys.
const DateFormatISO = "2006-01-02"

// ErrNoDate is returned by Parse when the input holds no date expression.
var ErrNoDate = errors.New("no date expression found")

// Parser finds natural-language date expressions in free text and resolves
// them against a reference time. A Parser is safe for concurrent use once
// its rules are configured.
type Parser struct {
	location *time.Location
	rules    []Rule
}

// NewParser creates a parser with the English rule set for the given IANA
// timezone string, e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, rules: EnglishRules()}, nil
}

// Clone returns a parser with a copy of p's rules, for adding custom rules
// without touching p.
func (p *Parser) Clone() *Parser {
	rules := make([]Rule, len(p.rules))
	copy(rules, p.rules)
	return &Parser{location: p.location, rules: rules}
}

// AddRules appends rules. Not safe to call while parses are running.
func (p *Parser) AddRules(rules ...Rule) {
	p.rules = append(p.rules, rules...)
}

// Location returns the timezone results are resolved in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseText returns every date expression in text, ordered by position.
func (p *Parser) ParseText(text string, ref time.Time, opt Options) []Result {
	// components carry whole seconds
	ref = ref.In(p.location).Truncate(time.Second)
	ctx := Context{Ref: ref, Options: opt}

	var results []Result
	for _, r := range p.rules {
		for _, loc := range r.Pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2*r.Group], loc[2*r.Group+1]
			if start < 0 {
				continue
			}
			groups := make([]string, len(loc)/2)
			for i := range groups {
				if loc[2*i] >= 0 {
					groups[i] = text[loc[2*i]:loc[2*i+1]]
				}
			}
			comps := r.Extract(ctx, groups)
			if comps == nil {
				continue
			}
			results = append(results, Result{Index: start, Text: text[start:end], Start: comps})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Index != results[j].Index {
			return results[i].Index < results[j].Index
		}
		return len(results[i].Text) > len(results[j].Text)
	})

	results = removeOverlaps(results)
	results = mergeDateTime(text, results)
	if opt.ForwardDate {
		for i := range results {
			forward(results[i].Start, ref)
		}
	}
	return results
}

// Parse resolves a single relative expression such as "tomorrow",
// "in 3 days" or "next friday 5pm". Date-only expressions resolve to the
// start of the day.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	results := p.ParseText(relative, baseTime, Options{ForwardDate: true})
	if len(results) == 0 {
		return baseTime, fmt.Errorf("%w: %q", ErrNoDate, relative)
	}
	r := results[0]
	if !r.Start.IsCertain(Hour) {
		return p.StartOfDay(r.Date()), nil
	}
	return r.Date(), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the given day in the parser's timezone.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}

// WorklogKey returns the work-log bucket key of t's day.
func (p *Parser) WorklogKey(t time.Time) string {
	return t.In(p.location).Format(DateFormatISO)
}

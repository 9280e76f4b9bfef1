package datemath

import (
	"regexp"
	"time"
)

// Component identifies one field of a resolved date.
type Component int

const (
	Year Component = iota
	Month
	Day
	Weekday
	Hour
	Minute
	Second
)

// Components holds the date fields a rule produced. Known values were stated
// by the input; implied values were filled in from the reference time.
type Components struct {
	loc     *time.Location
	known   map[Component]int
	implied map[Component]int
}

// NewComponents returns components implying the reference date at noon.
func NewComponents(ref time.Time) *Components {
	c := &Components{
		loc:     ref.Location(),
		known:   make(map[Component]int),
		implied: make(map[Component]int),
	}
	c.Imply(Year, ref.Year()).
		Imply(Month, int(ref.Month())).
		Imply(Day, ref.Day()).
		Imply(Hour, 12).
		Imply(Minute, 0).
		Imply(Second, 0)
	return c
}

// Assign records v as explicitly stated.
func (c *Components) Assign(comp Component, v int) *Components {
	c.known[comp] = v
	delete(c.implied, comp)
	return c
}

// Imply records v unless comp is already known.
func (c *Components) Imply(comp Component, v int) *Components {
	if _, ok := c.known[comp]; ok {
		return c
	}
	c.implied[comp] = v
	return c
}

// Get returns the known or implied value of comp, or 0.
func (c *Components) Get(comp Component) int {
	if v, ok := c.known[comp]; ok {
		return v
	}
	return c.implied[comp]
}

// IsCertain reports whether comp was stated by the input.
func (c *Components) IsCertain(comp Component) bool {
	_, ok := c.known[comp]
	return ok
}

// Date builds the instant. Out-of-range days roll into the next month.
func (c *Components) Date() time.Time {
	return time.Date(
		c.Get(Year), time.Month(c.Get(Month)), c.Get(Day),
		c.Get(Hour), c.Get(Minute), c.Get(Second), 0, c.loc,
	)
}

func (c *Components) impliedDate(t time.Time) {
	c.Imply(Year, t.Year()).Imply(Month, int(t.Month())).Imply(Day, t.Day())
}

func (c *Components) assignDate(t time.Time) {
	c.Assign(Year, t.Year()).Assign(Month, int(t.Month())).Assign(Day, t.Day())
}

func (c *Components) impliedTime(t time.Time) {
	c.Imply(Hour, t.Hour()).Imply(Minute, t.Minute()).Imply(Second, t.Second())
}

func (c *Components) hasDate() bool {
	return c.IsCertain(Day) || c.IsCertain(Month) || c.IsCertain(Year) || c.IsCertain(Weekday)
}

func (c *Components) isOnlyTime() bool {
	return c.IsCertain(Hour) && !c.hasDate()
}

func (c *Components) isOnlyDate() bool {
	return c.hasDate() && !c.IsCertain(Hour)
}

func (c *Components) isOnlyWeekday() bool {
	return c.IsCertain(Weekday) && !c.IsCertain(Day) && !c.IsCertain(Month) && !c.IsCertain(Year)
}

func (c *Components) isOnlyDayMonth() bool {
	return c.IsCertain(Day) && c.IsCertain(Month) && !c.IsCertain(Year)
}

func (c *Components) clone() *Components {
	out := &Components{
		loc:     c.loc,
		known:   make(map[Component]int, len(c.known)),
		implied: make(map[Component]int, len(c.implied)),
	}
	for k, v := range c.known {
		out.known[k] = v
	}
	for k, v := range c.implied {
		out.implied[k] = v
	}
	return out
}

// Result is one date expression found in a text.
type Result struct {
	Index int    // byte offset of Text in the parsed string
	Text  string // matched expression
	Start *Components
}

// Date returns the resolved instant.
func (r Result) Date() time.Time {
	return r.Start.Date()
}

// Options tune a ParseText call.
type Options struct {
	// ForwardDate resolves ambiguous dates to their next future occurrence.
	ForwardDate bool
}

// Context is handed to every rule extraction.
type Context struct {
	Ref     time.Time
	Options Options
}

// Rule recognizes one family of date expressions.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	// Group selects the capture group reported as the result text; 0 is the whole match.
	Group int
	// Extract returns nil when the match is not a valid date.
	Extract func(ctx Context, m []string) *Components
}

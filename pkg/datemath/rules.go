package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tues": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thurs": time.Thursday, "thur": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

const (
	weekdayPattern = `sunday|sun|monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat`
	monthPattern   = `january|jan|february|feb|march|mar|april|apr|may|june|jun|july|jul|august|aug|september|sept|sep|october|oct|november|nov|december|dec`
	numberPattern  = `\d+|an?|one|two|three|four|five|six|seven|eight|nine|ten`
)

// EnglishRules returns the built-in rule set.
func EnglishRules() []Rule {
	return []Rule{
		{
			Name:    "casual",
			Pattern: regexp.MustCompile(`(?i)\b(now|today|tonight|tomorrow|tmr|yesterday)\b`),
			Extract: extractCasual,
		},
		{
			Name:    "weekday",
			Pattern: regexp.MustCompile(`(?i)\b(?:(this|next|last)\s+)?(` + weekdayPattern + `)\b`),
			Extract: extractWeekday,
		},
		{
			Name: "relative",
			Pattern: regexp.MustCompile(`(?i)\b(?:in|within)\s+(` + numberPattern +
				`)\s*(minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?)\b`),
			Extract: extractRelative,
		},
		{
			Name:    "iso",
			Pattern: regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})(?:[T ](\d{1,2}):(\d{2})(?::(\d{2}))?)?\b`),
			Extract: extractISO,
		},
		{
			Name:    "slash",
			Pattern: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?\b`),
			Extract: extractSlash,
		},
		{
			Name: "day-month",
			Pattern: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?(?:\s+of)?\s+(` + monthPattern +
				`)\b(?:,?\s+(\d{4})\b)?`),
			Extract: func(ctx Context, m []string) *Components {
				return monthDay(ctx, m[2], m[1], m[3])
			},
		},
		{
			Name: "month-day",
			Pattern: regexp.MustCompile(`(?i)\b(` + monthPattern +
				`)\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`),
			Extract: func(ctx Context, m []string) *Components {
				return monthDay(ctx, m[1], m[2], m[3])
			},
		},
		{
			Name:    "meridiem-time",
			Pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`),
			Extract: extractMeridiem,
		},
		{
			Name:    "clock-time",
			Pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2}):(\d{2})\b`),
			Extract: extractClock,
		},
		{
			Name:    "named-time",
			Pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?(noon|midday|midnight)\b`),
			Extract: extractNamedTime,
		},
	}
}

func extractCasual(ctx Context, m []string) *Components {
	ref := ctx.Ref
	c := NewComponents(ref)
	switch strings.ToLower(m[1]) {
	case "now":
		c.assignDate(ref)
		c.Assign(Hour, ref.Hour()).Assign(Minute, ref.Minute()).Assign(Second, ref.Second())
	case "today":
		c.assignDate(ref)
		c.impliedTime(ref)
	case "tonight":
		c.assignDate(ref)
		c.Imply(Hour, 22)
	case "tomorrow", "tmr":
		c.assignDate(ref.AddDate(0, 0, 1))
		c.impliedTime(ref)
	case "yesterday":
		c.assignDate(ref.AddDate(0, 0, -1))
		c.impliedTime(ref)
	default:
		return nil
	}
	return c
}

func extractWeekday(ctx Context, m []string) *Components {
	target, ok := weekdays[strings.ToLower(m[2])]
	if !ok {
		return nil
	}
	ref := ctx.Ref
	diff := int(target - ref.Weekday())

	c := NewComponents(ref)
	switch strings.ToLower(m[1]) {
	case "next":
		if diff <= 0 {
			diff += 7
		}
		c.assignDate(ref.AddDate(0, 0, diff))
	case "last":
		if diff >= 0 {
			diff -= 7
		}
		c.assignDate(ref.AddDate(0, 0, diff))
	case "this":
		c.assignDate(ref.AddDate(0, 0, diff))
	default:
		switch {
		case ctx.Options.ForwardDate && diff < 0:
			diff += 7
		case !ctx.Options.ForwardDate && diff < -3:
			diff += 7
		case !ctx.Options.ForwardDate && diff > 3:
			diff -= 7
		}
		c.impliedDate(ref.AddDate(0, 0, diff))
	}
	c.Assign(Weekday, int(target))
	return c
}

func extractRelative(ctx Context, m []string) *Components {
	amount, ok := numberWords[strings.ToLower(m[1])]
	if !ok {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		amount = n
	}

	ref := ctx.Ref
	c := NewComponents(ref)
	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "min"):
		t := ref.Add(time.Duration(amount) * time.Minute)
		c.assignDate(t)
		c.Assign(Hour, t.Hour()).Assign(Minute, t.Minute()).Assign(Second, t.Second())
	case strings.HasPrefix(unit, "h"):
		t := ref.Add(time.Duration(amount) * time.Hour)
		c.assignDate(t)
		c.Assign(Hour, t.Hour()).Assign(Minute, t.Minute()).Assign(Second, t.Second())
	case strings.HasPrefix(unit, "day"):
		c.assignDate(ref.AddDate(0, 0, amount))
		c.impliedTime(ref)
	case strings.HasPrefix(unit, "week"):
		c.assignDate(ref.AddDate(0, 0, amount*7))
		c.impliedTime(ref)
	case strings.HasPrefix(unit, "month"):
		c.assignDate(ref.AddDate(0, amount, 0))
		c.impliedTime(ref)
	case strings.HasPrefix(unit, "year"):
		c.assignDate(ref.AddDate(amount, 0, 0))
		c.impliedTime(ref)
	default:
		return nil
	}
	return c
}

func extractISO(ctx Context, m []string) *Components {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if !validDate(year, month, day) {
		return nil
	}
	c := NewComponents(ctx.Ref)
	c.Assign(Year, year).Assign(Month, month).Assign(Day, day)
	if m[4] != "" {
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		second, _ := strconv.Atoi(m[6])
		if hour > 23 || minute > 59 || second > 59 {
			return nil
		}
		c.Assign(Hour, hour).Assign(Minute, minute).Assign(Second, second)
	}
	return c
}

func extractSlash(ctx Context, m []string) *Components {
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	c := NewComponents(ctx.Ref)
	year := ctx.Ref.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		c.Assign(Year, year)
	}
	if !validDate(year, month, day) {
		return nil
	}
	return c.Assign(Month, month).Assign(Day, day)
}

func monthDay(ctx Context, monthName, dayStr, yearStr string) *Components {
	month, ok := months[strings.ToLower(monthName)]
	if !ok {
		return nil
	}
	day, _ := strconv.Atoi(dayStr)
	c := NewComponents(ctx.Ref)
	year := ctx.Ref.Year()
	if yearStr != "" {
		year, _ = strconv.Atoi(yearStr)
		c.Assign(Year, year)
	}
	if !validDate(year, int(month), day) {
		return nil
	}
	return c.Assign(Month, int(month)).Assign(Day, day)
}

func extractMeridiem(ctx Context, m []string) *Components {
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return nil
	}
	if strings.EqualFold(m[3], "pm") {
		if hour != 12 {
			hour += 12
		}
	} else if hour == 12 {
		hour = 0
	}
	return clock(ctx.Ref, hour, minute)
}

func extractClock(ctx Context, m []string) *Components {
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return nil
	}
	return clock(ctx.Ref, hour, minute)
}

func extractNamedTime(ctx Context, m []string) *Components {
	if strings.EqualFold(m[1], "midnight") {
		return clock(ctx.Ref, 0, 0)
	}
	return clock(ctx.Ref, 12, 0)
}

func clock(ref time.Time, hour, minute int) *Components {
	return NewComponents(ref).Assign(Hour, hour).Assign(Minute, minute).Assign(Second, 0)
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	// day 0 of the next month is the last day of this one
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}

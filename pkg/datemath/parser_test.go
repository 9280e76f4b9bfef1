package datemath_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"task-short-syntax/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "In an hour",
			relative: "in an hour",
			want:     baseTime.Add(time.Hour),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Bare weekday resolves forward",
			relative: "mon",
			want:     startOfBase.AddDate(0, 0, 5),
		},
		{
			name:     "Next Friday with time",
			relative: "next friday 5pm",
			want:     time.Date(2024, 5, 3, 17, 0, 0, 0, time.UTC),
		},
		{
			name:     "Unknown text",
			relative: "some random day",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, datemath.ErrNoDate) {
				t.Errorf("Parse() error = %v, want ErrNoDate", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseText(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name      string
		text      string
		forward   bool
		wantText  string
		wantIndex int
		want      time.Time
		hourKnown bool
	}{
		{
			name:      "time only in the future stays today",
			text:      "call @5pm",
			forward:   true,
			wantText:  "5pm",
			wantIndex: 6,
			want:      time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC),
			hourKnown: true,
		},
		{
			name:      "past time rolls to tomorrow with forward bias",
			text:      "standup 9:15",
			forward:   true,
			wantText:  "9:15",
			wantIndex: 8,
			want:      time.Date(2024, 5, 2, 9, 15, 0, 0, time.UTC),
			hourKnown: true,
		},
		{
			name:      "past time stays without forward bias",
			text:      "standup 9:15",
			wantText:  "9:15",
			wantIndex: 8,
			want:      time.Date(2024, 5, 1, 9, 15, 0, 0, time.UTC),
			hourKnown: true,
		},
		{
			name:      "date and time merge",
			text:      "ship it tomorrow at 10am please",
			forward:   true,
			wantText:  "tomorrow at 10am",
			wantIndex: 8,
			want:      time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
			hourKnown: true,
		},
		{
			name:      "time before date merges",
			text:      "noon friday",
			forward:   true,
			wantText:  "noon friday",
			want:      time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC),
			hourKnown: true,
		},
		{
			name:     "iso date",
			text:     "due 2024-06-10",
			forward:  true,
			wantText: "2024-06-10",
			want:     time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),

			wantIndex: 4,
		},
		{
			name:      "past day-month moves to next year",
			text:      "renew 3rd of march",
			forward:   true,
			wantText:  "3rd of march",
			wantIndex: 6,
			want:      time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "month day with year",
			text:      "trip Jun 5, 2025",
			forward:   true,
			wantText:  "Jun 5, 2025",
			wantIndex: 5,
			want:      time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "slash date",
			text:      "pay rent 5/31",
			forward:   true,
			wantText:  "5/31",
			wantIndex: 9,
			want:      time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "last weekday is not moved forward",
			text:      "last monday",
			forward:   true,
			wantText:  "last monday",
			want:      time.Date(2024, 4, 29, 12, 0, 0, 0, time.UTC),
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := parser.ParseText(tt.text, ref, datemath.Options{ForwardDate: tt.forward})
			if len(results) == 0 {
				t.Fatalf("ParseText(%q) found nothing", tt.text)
			}
			r := results[0]
			if r.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", r.Text, tt.wantText)
			}
			if r.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", r.Index, tt.wantIndex)
			}
			if !r.Date().Equal(tt.want) {
				t.Errorf("Date() = %v, want %v", r.Date(), tt.want)
			}
			if r.Start.IsCertain(datemath.Hour) != tt.hourKnown {
				t.Errorf("IsCertain(Hour) = %v, want %v", r.Start.IsCertain(datemath.Hour), tt.hourKnown)
			}
		})
	}
}

func TestParseTextNowIgnoresSubSecond(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2024, 5, 1, 15, 30, 0, 123456789, time.UTC)

	for _, text := range []string{"ship it now", "at 15:30"} {
		results := parser.ParseText(text, ref, datemath.Options{ForwardDate: true})
		if len(results) == 0 {
			t.Fatalf("ParseText(%q) found nothing", text)
		}
		want := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
		if got := results[0].Date(); !got.Equal(want) {
			t.Errorf("ParseText(%q) Date() = %v, want %v", text, got, want)
		}
	}
}

func TestParseTextRejectsInvalidDates(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	for _, text := range []string{"feb 30", "13/40", "2024-13-01", "25:61", "no dates here"} {
		if results := parser.ParseText(text, ref, datemath.Options{}); len(results) != 0 {
			t.Errorf("ParseText(%q) = %+v, want none", text, results[0])
		}
	}
}

func TestCloneAddRules(t *testing.T) {
	base, _ := datemath.NewParser("UTC")
	custom := base.Clone()
	custom.AddRules(datemath.Rule{
		Name:    "payday",
		Pattern: regexp.MustCompile(`(?i)\b(payday)\b`),
		Group:   1,
		Extract: func(ctx datemath.Context, _ []string) *datemath.Components {
			return datemath.NewComponents(ctx.Ref).Assign(datemath.Day, 25)
		},
	})

	ref := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	if got := base.ParseText("on payday", ref, datemath.Options{}); len(got) != 0 {
		t.Fatalf("base parser picked up custom rule: %+v", got)
	}
	got := custom.ParseText("on payday", ref, datemath.Options{})
	if len(got) != 1 {
		t.Fatalf("custom parser results = %d, want 1", len(got))
	}
	if got[0].Text != "payday" || got[0].Date().Day() != 25 {
		t.Errorf("result = %q %v", got[0].Text, got[0].Date())
	}
}

func TestStartEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 13, 4, 5, 0, time.UTC)

	if got, want := parser.StartOfDay(base), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("StartOfDay() got = %v, want %v", got, want)
	}
	if got, want := parser.EndOfDay(base), time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC); !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestWorklogKey(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	// 20:00 UTC is already the next day at UTC+7
	got := parser.WorklogKey(time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC))
	if got != "2024-05-02" {
		t.Errorf("WorklogKey() = %q, want 2024-05-02", got)
	}
}

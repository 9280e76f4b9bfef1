package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit weights in milliseconds.
const (
	Second int64 = 1000
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
)

var unitWeights = map[byte]int64{
	's': Second,
	'm': Minute,
	'h': Hour,
	'd': Day,
}

// ErrOutOfRange is returned by Parse for totals that do not fit in int64
// milliseconds.
var ErrOutOfRange = errors.New("duration: out of range")

// ToMs converts a unit-tagged duration string such as "1h30m", "2h 15m" or
// "1.5h" to milliseconds. Amounts without a known unit are ignored, so a
// string with no valid amount yields 0. Out-of-range totals also yield 0.
func ToMs(s string) int64 {
	ms, err := Parse(s)
	if err != nil {
		return 0
	}
	return ms
}

// Parse is ToMs with overflow reporting.
func Parse(s string) (int64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}

	var total float64
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && (isDigit(s[i]) || s[i] == '.') {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}
		if i < len(s) {
			if w, ok := unitWeights[s[i]]; ok {
				amount, err := strconv.ParseFloat(s[start:i], 64)
				switch {
				case errors.Is(err, strconv.ErrRange):
					return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
				case err == nil:
					total += amount * float64(w)
				}
				if total >= float64(math.MaxInt64) {
					return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
				}
			}
		}
		start = -1
	}
	return int64(total), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Format renders ms as "1d 2h 30m", dropping zero parts. Sub-minute values
// are rendered in seconds.
func Format(ms int64) string {
	if ms <= 0 {
		return "0m"
	}
	if ms < Minute {
		return fmt.Sprintf("%ds", ms/Second)
	}

	var parts []string
	for _, u := range []struct {
		weight int64
		suffix string
	}{{Day, "d"}, {Hour, "h"}, {Minute, "m"}} {
		if n := ms / u.weight; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
			ms -= n * u.weight
		}
	}
	return strings.Join(parts, " ")
}

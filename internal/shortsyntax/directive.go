package shortsyntax

import (
	"regexp"
	"strings"
)

// Directive sigils.
const (
	SigilProject byte = '+'
	SigilTag     byte = '#'
	SigilDue     byte = '@'
)

const specialChars = "+#@"

// Directive patterns, exported for title highlighting. Each captures a sigil
// and the run of characters up to the next sigil.
var (
	ProjectRegex = regexp.MustCompile(`\+[^+#@]+`)
	TagsRegex    = regexp.MustCompile(`#[^+#@]+`)
	DueRegex     = regexp.MustCompile(`@[^+#@]+`)

	// TimeRegex matches a trailing "[t][<spent>/]<estimate>" annotation.
	// Group 1 is the spent token, group 2 the estimate token.
	TimeRegex = regexp.MustCompile(`(?i) t?(?:((?:[0-9]+[mhd]+)+)? */ *)?((?:[0-9]+[mhd]+)+) *$`)
)

// Directive is one sigil-prefixed span of a title.
type Directive struct {
	Sigil byte
	Start int // byte offset of the sigil
	End   int // exclusive
	Text  string
}

// Value returns the directive text without its sigil.
func (d Directive) Value() string {
	return d.Text[1:]
}

// FindDirectives scans title for sigil and returns each maximal run that does
// not reach another sigil. A sigil directly followed by another sigil or the
// end of the title is not a directive. Results match the sigil's regexp.
func FindDirectives(title string, sigil byte) []Directive {
	var out []Directive
	for i := 0; i < len(title); i++ {
		if title[i] != sigil {
			continue
		}
		j := i + 1
		for j < len(title) && strings.IndexByte(specialChars, title[j]) < 0 {
			j++
		}
		if j == i+1 {
			continue
		}
		out = append(out, Directive{Sigil: sigil, Start: i, End: j, Text: title[i:j]})
		i = j - 1
	}
	return out
}

package entities

import (
	"regexp"
	"strings"
)

// revisionLinePattern matches a single-line "rev:" assignment. The groups are the
// indentation, the gap after the colon, the opening quote, the value token (which
// keeps a closing quote), the trailing content and the line terminator.
var revisionLinePattern = regexp.MustCompile(`^([ \t]*)rev:([ \t]*)(['"]?)([^\s#]+)(.*?)(\r\n|\n)?$`)

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// RevisionLineMatch is the decomposition of a "rev:" line.
type RevisionLineMatch struct {
	Indent     string
	Gap        string
	Quote      string // "", "'" or `"`
	Token      string
	Trailing   string // spaces and comment after the value
	Terminator string // "\n", "\r\n" or "" on a last line without newline
}

// IsRevisionLine reports whether the line looks like a "rev:" assignment.
func IsRevisionLine(line string) bool {
	return revisionLinePattern.MatchString(line)
}

// ParseRevisionLine decomposes line, returning false when it is not a "rev:" assignment.
func ParseRevisionLine(line string) (RevisionLineMatch, bool) {
	groups := revisionLinePattern.FindStringSubmatch(line)
	if groups == nil {
		return RevisionLineMatch{}, false
	}
	return RevisionLineMatch{
		Indent:     groups[1],
		Gap:        groups[2],
		Quote:      groups[3],
		Token:      groups[4],
		Trailing:   groups[5],
		Terminator: groups[6],
	}, true
}

// CurrentValue is the pinned revision without quote characters.
func (m RevisionLineMatch) CurrentValue() string {
	return quoteStripper.Replace(m.Token)
}

// String rebuilds the original line.
func (m RevisionLineMatch) String() string {
	return m.WithValue(m.Quote + m.Token)
}

// WithValue rebuilds the line with rendered in place of the quoted value.
func (m RevisionLineMatch) WithValue(rendered string) string {
	var sb strings.Builder
	sb.WriteString(m.Indent)
	sb.WriteString("rev:")
	sb.WriteString(m.Gap)
	sb.WriteString(rendered)
	sb.WriteString(m.Trailing)
	sb.WriteString(m.Terminator)
	return sb.String()
}

// SplitLines splits content after every "\n", keeping the terminators, so that
// joining the result gives content back.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

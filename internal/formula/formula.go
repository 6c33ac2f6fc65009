package formula

import (
	"fmt"
	"regexp"
	"strconv"
)

// Term is one element occurrence in a formula. Counts may be fractional and
// the same symbol may appear in several terms; terms are kept in the order
// they occur.
type Term struct {
	Symbol string
	Count  float64
}

// ParseError reports a formula string with no recognizable element term.
type ParseError struct {
	Formula string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("unparsable chemical formula %q", e.Formula)
}

// an element symbol is one uppercase letter plus any lowercase tail; the
// count is an optional integer or decimal (".25" counts as 0.25)
var termPattern = regexp.MustCompile(`([A-Z][a-z]*)(\d+(?:\.\d*)?|\.\d+)?`)

// Parse splits a formula into its element terms. Case is load-bearing:
// "CO" is carbon and oxygen, "Co" is cobalt.
func Parse(s string) ([]Term, error) {
	matches := termPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil, ParseError{Formula: s}
	}
	terms := make([]Term, 0, len(matches))
	for _, match := range matches {
		count := 1.
		if match[2] != "" {
			var err error
			count, err = strconv.ParseFloat(match[2], 64)
			if err != nil {
				return nil, ParseError{Formula: s}
			}
		}
		terms = append(terms, Term{Symbol: match[1], Count: count})
	}
	return terms, nil
}

package message

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled extraction or skip pattern
type Pattern struct {
	re *regexp.Regexp
}

// CompilePattern compiles a user supplied regex. Malformed patterns are a
// configuration error and are reported as *PatternError.
func CompilePattern(flag, expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Flag: flag, Pattern: expr, Err: err}
	}
	return &Pattern{re: re}, nil
}

// FirstMatch returns the leftmost match in text, or "" if there is none.
// A pattern that can only match the empty string never counts as a match.
func (p *Pattern) FirstMatch(text string) string {
	return p.re.FindString(text)
}

// Matches reports whether FirstMatch finds a non-empty match
func (p *Pattern) Matches(text string) bool {
	return p.FirstMatch(text) != ""
}

// String returns the source expression
func (p *Pattern) String() string {
	return p.re.String()
}

// PatternError reports a regex that failed to compile
type PatternError struct {
	Flag    string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Flag, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

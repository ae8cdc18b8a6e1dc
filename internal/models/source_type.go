package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSourceType is returned for selector values outside the enumeration
var ErrUnknownSourceType = errors.New("unknown source type")

// SourceType selects which projection of HEAD is fed to the extraction pattern
type SourceType int

const (
	// HeadFriendlyName is the short ref name, e.g. "feature/x"
	HeadFriendlyName SourceType = iota
	// HeadCanonicalName is the fully qualified ref, e.g. "refs/heads/feature/x"
	HeadCanonicalName
)

// SourceTypeNames lists the accepted command line spellings, in declaration order
var SourceTypeNames = []string{"GitHeadFriendlyName", "GitHeadCanonicalName"}

// ParseSourceType converts a command line or config value into a SourceType.
// Matching is case-insensitive.
func ParseSourceType(s string) (SourceType, error) {
	for i, name := range SourceTypeNames {
		if strings.EqualFold(s, name) {
			return SourceType(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownSourceType, s, strings.Join(SourceTypeNames, ", "))
}

// String returns the command line spelling
func (s SourceType) String() string {
	switch s {
	case HeadFriendlyName, HeadCanonicalName:
		return SourceTypeNames[s]
	default:
		return fmt.Sprintf("SourceType(%d)", int(s))
	}
}

// Set implements pflag.Value
func (s *SourceType) Set(v string) error {
	parsed, err := ParseSourceType(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value
func (s *SourceType) Type() string {
	return "sourceType"
}

// MarshalText lets the value round-trip through TOML
func (s SourceType) MarshalText() ([]byte, error) {
	switch s {
	case HeadFriendlyName, HeadCanonicalName:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownSourceType, int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SourceType) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

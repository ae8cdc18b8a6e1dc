package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/wahlandcase/giti/internal/models"

	"github.com/go-playground/validator/v10"
)

// Flag names shared by the command definition and validation messages
const (
	FlagPattern     = "pattern"
	FlagTemplate    = "template"
	FlagSourceType  = "sourceType"
	FlagSkipPattern = "skipPattern"
)

var validate = newValidator()

// Options is the configuration for one run
type Options struct {
	CommitMessageFile string            `flag:"commitMessageFile" validate:"required"`
	SourceType        models.SourceType `flag:"sourceType" validate:"min=0,max=1"`
	Pattern           string            `flag:"pattern" validate:"required"`
	Template          string            `flag:"template" validate:"required"`
	SkipPattern       string            `flag:"skipPattern"`

	DryRun   bool
	Verbose  bool
	Debug    bool
	NoColor  bool
	Language string `flag:"lang" validate:"omitempty,bcp47_language_tag"`
}

// EffectiveSkipPattern returns SkipPattern, falling back to Pattern when empty
func (o Options) EffectiveSkipPattern() string {
	if o.SkipPattern != "" {
		return o.SkipPattern
	}
	return o.Pattern
}

// Apply fills options the user did not set on the command line from the
// config file. changed reports whether a flag was given explicitly.
func (c *Config) Apply(o *Options, changed func(flag string) bool) {
	d := c.Defaults
	if !changed(FlagSourceType) {
		o.SourceType = d.SourceType
	}
	if !changed(FlagPattern) && d.Pattern != "" {
		o.Pattern = d.Pattern
	}
	if !changed(FlagTemplate) && d.Template != "" {
		o.Template = d.Template
	}
	// A file skip pattern only pairs with the file pattern; an explicit
	// --pattern keeps the skip pattern defaulting to itself.
	if !changed(FlagSkipPattern) && !changed(FlagPattern) && d.SkipPattern != "" {
		o.SkipPattern = d.SkipPattern
	}
	if o.Language == "" {
		o.Language = c.Language
	}
	if !c.Color {
		o.NoColor = true
	}
}

// Validate checks that required values are present after merging
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			verr.Missing = append(verr.Missing, fe.Field())
		default:
			verr.Invalid = append(verr.Invalid, fmt.Sprintf("%s=%v", fe.Field(), fe.Value()))
		}
	}
	return verr
}

// ValidationError lists missing and malformed options by flag name
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required option(s): "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid option(s): "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report flag names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("flag"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

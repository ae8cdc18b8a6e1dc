package message

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Names bound inside a template. Both {{ match }} and {{ .match }} work.
const (
	MatchKey   = "match"
	MessageKey = "message"
)

// Template is a parsed commit message template
type Template struct {
	text string
	tmpl *template.Template
}

// CompileTemplate parses text. The sprig function set is available, so
// templates like "{{ match | upper }}: {{ message }}" are accepted.
func CompileTemplate(text string) (*Template, error) {
	tmpl, err := template.New("message").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		Funcs(bindings("", "")).
		Parse(text)
	if err != nil {
		return nil, &TemplateError{Template: text, Err: err}
	}
	return &Template{text: text, tmpl: tmpl}, nil
}

// Render executes the template with the extracted match and original message
func (t *Template) Render(match, message string) (string, error) {
	tmpl, err := t.tmpl.Clone()
	if err != nil {
		return "", &TemplateError{Template: t.text, Err: err}
	}
	tmpl.Funcs(bindings(match, message))

	var buf strings.Builder
	data := map[string]string{
		MatchKey:   match,
		MessageKey: message,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &TemplateError{Template: t.text, Err: err}
	}
	return buf.String(), nil
}

func bindings(match, message string) template.FuncMap {
	return template.FuncMap{
		MatchKey:   func() string { return match },
		MessageKey: func() string { return message },
	}
}

// TemplateError reports a template that failed to parse or execute
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("invalid template %q: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

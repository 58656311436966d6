// Package templating renders workflow text through Go templates with a
// flat key-value dictionary.
package templating

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
)

// ErrTemplate wraps every parse or execution failure so callers can treat
// rendering as a single failure class.
var ErrTemplate = errors.New("template error")

// Render executes text as a Go template against a flat string dictionary.
// Unknown keys fail rather than rendering "<no value>": a workflow payload
// with a missing variable is a configuration bug, not a display concern.
func Render(text string, vars map[string]string) (string, error) {
	tmpl, err := template.New("workflow").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: parse: %v", ErrTemplate, err)
	}

	if vars == nil {
		vars = map[string]string{}
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, vars); err != nil {
		return "", fmt.Errorf("%w: render: %v", ErrTemplate, err)
	}

	return buf.String(), nil
}

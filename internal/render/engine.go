package render

import (
	"fmt"

	"github.com/aymerick/raymond"
)

// Engine renders template source against a set of variables.
type Engine interface {
	Render(source string, vars map[string]interface{}) (string, error)
}

// HandlebarsEngine renders Handlebars templates. Unknown tokens render as
// empty strings and {{token}} output is HTML-escaped, as in Handlebars.js;
// use {{{token}}} for raw output.
type HandlebarsEngine struct{}

// Render parses and executes source.
func (HandlebarsEngine) Render(source string, vars map[string]interface{}) (string, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	out, err := tpl.Exec(vars)
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return out, nil
}

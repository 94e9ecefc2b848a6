// Package naming derives the component name and output directory from the
// raw path argument given on the command line.
//
// The rules are small but exact:
//
//	"button"          → name "Button", path "components/Button"
//	"forms/input"     → name "Input",  path "components/forms/Input"
//
// where "components" is the configured path prefix. No I/O is performed.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shinji-kodama/skeleton/internal/model"
)

// Capitalize upper-cases the first character of s and leaves the rest
// untouched. "myButton" becomes "MyButton", not "Mybutton".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Derive turns rawPath into a component name and output path.
//
// The last "/"-separated segment of rawPath is the component name. It is
// capitalized and re-inserted as the final path segment. When prefix is
// non-empty it is prepended with a "/" separator.
//
// Degenerate input is not rejected here: an empty rawPath yields an empty
// name. Callers that need a usable name validate the result.
func Derive(rawPath, prefix string) model.Target {
	name := rawPath
	dir := ""
	nested := false
	if i := strings.LastIndex(rawPath, "/"); i >= 0 {
		dir, name, nested = rawPath[:i], rawPath[i+1:], true
	}

	name = Capitalize(name)

	path := name
	if nested {
		path = dir + "/" + name
	}
	if prefix != "" {
		path = prefix + "/" + path
	}

	return model.Target{Name: name, Path: path}
}

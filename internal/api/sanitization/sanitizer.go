// Package sanitization prepares visitor input for places that render it,
// such as the HTML-formatted Telegram notification.
package sanitization

import (
	"html/template"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// EscapeHTML escapes text for HTML parse modes. Newlines are kept.
func EscapeHTML(input string) string {
	return template.HTMLEscapeString(input)
}

// SingleLine escapes the input and collapses every whitespace run,
// newlines included, into one space
func SingleLine(input string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(EscapeHTML(input), " "))
}

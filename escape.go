package templatize

import (
	"fmt"
	"regexp"
	"strings"
)

// EscapeReplacer rewrites pre-existing placeholder expressions so they
// survive a later template render verbatim. Each {{ expr }} becomes
// {{'{'}}{ expr }}: the placeholder renders a literal '{', leaving
// `{ expr }}` as plain text, so rendering reproduces the original
// {{ expr }} exactly.
type EscapeReplacer struct {
	pattern *regexp.Regexp
}

func NewEscapeReplacer() (*EscapeReplacer, error) {
	pattern, err := regexp.Compile(`\{\{\s*([^}]+)\s*\}\}`)
	if err != nil {
		return nil, fmt.Errorf("compiling placeholder pattern: %w", err)
	}
	return &EscapeReplacer{pattern: pattern}, nil
}

func (r *EscapeReplacer) TransformContent(s string) (string, bool) {
	if !r.pattern.MatchString(s) {
		return "", false
	}
	escaped := r.pattern.ReplaceAllStringFunc(s, func(m string) string {
		inner := strings.TrimSpace(m[2 : len(m)-2])
		return "{{'{'}}{ " + inner + " }}"
	})
	return escaped, true
}

// Escaping applies to contents only.
func (r *EscapeReplacer) TransformComponent(string) (string, bool) { return "", false }
func (r *EscapeReplacer) TransformPath(string) (string, bool)      { return "", false }
func (r *EscapeReplacer) SpansSegments() bool                      { return false }

func (r *EscapeReplacer) Describe() string { return "placeholder escaping" }

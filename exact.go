package templatize

import (
	"path/filepath"
	"strings"
)

// ExactReplacer substitutes one literal token everywhere it occurs.
type ExactReplacer struct {
	token       string
	replacement string
}

func NewExactReplacer(token, replacement string) *ExactReplacer {
	return &ExactReplacer{token: token, replacement: replacement}
}

func (r *ExactReplacer) TransformContent(s string) (string, bool) {
	if !strings.Contains(s, r.token) {
		return "", false
	}
	return strings.ReplaceAll(s, r.token, r.replacement), true
}

func (r *ExactReplacer) TransformComponent(name string) (string, bool) {
	base := filepath.Base(name)
	if !strings.Contains(base, r.token) {
		return "", false
	}
	return strings.ReplaceAll(base, r.token, r.replacement), true
}

func (r *ExactReplacer) TransformPath(path string) (string, bool) {
	normalized := normalizeSeparators(path)
	token := normalizeSeparators(r.token)
	if !strings.Contains(normalized, token) {
		return "", false
	}
	return filepath.FromSlash(strings.ReplaceAll(normalized, token, r.replacement)), true
}

func (r *ExactReplacer) SpansSegments() bool {
	return strings.Contains(normalizeSeparators(r.token), "/")
}

func normalizeSeparators(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func (r *ExactReplacer) Describe() string { return "exact replacement" }

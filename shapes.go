package templatize

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([^}]+)\s*\}\}`)

// caseShapes is the fixed set of casing conventions a compound token is
// expanded into. The literal as-typed pair is added on top of these.
var caseShapes = []struct {
	name    string
	convert func(string) string
}{
	{"camel", strcase.ToLowerCamel},
	{"pascal", strcase.ToCamel},
	{"kebab", strcase.ToKebab},
	{"snake", strcase.ToSnake},
	{"train", toTrainCase},
	{"screaming-snake", strcase.ToScreamingSnake},
	{"cobol", strcase.ToScreamingKebab},
}

func toTrainCase(s string) string {
	title := cases.Title(language.English)
	parts := strings.Split(strcase.ToKebab(s), "-")
	for i, p := range parts {
		parts[i] = title.String(p)
	}
	return strings.Join(parts, "-")
}

// ShapeReplacer substitutes every recognized casing variant of a compound
// token with the matching casing of the replacement.
type ShapeReplacer struct {
	mappings map[string]string
	// keys sorted longest first, so a shorter variant never matches
	// inside a longer one before the longer one is tried
	ordered []string
}

func NewShapeReplacer(token, replacement string) (*ShapeReplacer, error) {
	if err := validateCompoundWord(token, "token"); err != nil {
		return nil, err
	}
	if err := validateCompoundWord(replacement, "replacement"); err != nil {
		return nil, err
	}

	mappings := make(map[string]string, len(caseShapes)+1)
	for _, shape := range caseShapes {
		mappings[shape.convert(token)] = convertReplacement(replacement, shape.convert)
	}
	mappings[token] = replacement

	ordered := make([]string, 0, len(mappings))
	for k := range mappings {
		ordered = append(ordered, k)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	return &ShapeReplacer{mappings: mappings, ordered: ordered}, nil
}

// convertReplacement re-cases the replacement. A placeholder-wrapped
// replacement has its inner variable converted and re-wrapped so the
// placeholder syntax itself survives untouched.
func convertReplacement(replacement string, convert func(string) string) string {
	if inner, ok := placeholderInner(replacement); ok {
		return "{{ " + convert(inner) + " }}"
	}
	return convert(replacement)
}

func placeholderInner(s string) (string, bool) {
	m := placeholderPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func validateCompoundWord(word, field string) error {
	clean := word
	if inner, ok := placeholderInner(word); ok {
		clean = inner
	}

	compound := strings.ContainsAny(clean, "-_")
	for i, r := range clean {
		if i > 0 && unicode.IsUpper(r) {
			compound = true
			break
		}
	}
	if !compound {
		return fmt.Errorf("the %s %q is not a compound word: expected a hyphen, an underscore, or mixed case (e.g. \"example-name\", \"project_name\", \"ProjectName\")", field, clean)
	}
	return nil
}

// Mappings returns a copy of the variant table, mostly for inspection.
func (r *ShapeReplacer) Mappings() map[string]string {
	out := make(map[string]string, len(r.mappings))
	for k, v := range r.mappings {
		out[k] = v
	}
	return out
}

func (r *ShapeReplacer) TransformContent(s string) (string, bool) {
	changed := false
	for _, key := range r.ordered {
		if strings.Contains(s, key) {
			s = strings.ReplaceAll(s, key, r.mappings[key])
			changed = true
		}
	}
	if !changed {
		return "", false
	}
	return s, true
}

func (r *ShapeReplacer) TransformComponent(name string) (string, bool) {
	base := filepath.Base(name)
	s, ok := r.TransformContent(base)
	if !ok || s == base {
		return "", false
	}
	return s, true
}

func (r *ShapeReplacer) TransformPath(path string) (string, bool) {
	normalized := normalizeSeparators(path)
	s, ok := r.TransformContent(normalized)
	if !ok || s == normalized {
		return "", false
	}
	return filepath.FromSlash(s), true
}

// SpansSegments is always false: compound-word validation guarantees shape
// tokens contain no path separator.
func (r *ShapeReplacer) SpansSegments() bool { return false }

func (r *ShapeReplacer) Describe() string { return "case shape replacement" }

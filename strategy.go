package templatize

// Replacer is one substitution strategy. All three transforms return the
// rewritten string and true, or ("", false) when nothing matched.
// Implementations are immutable after construction.
type Replacer interface {
	// TransformContent rewrites every occurrence in a text body.
	TransformContent(s string) (string, bool)

	// TransformComponent rewrites a single path segment (a base name).
	TransformComponent(name string) (string, bool)

	// TransformPath rewrites a full path with separators normalized to
	// '/', so a token may match across segment boundaries.
	TransformPath(path string) (string, bool)

	// SpansSegments reports whether the token contains a path separator.
	// The walker only attempts whole-path renames for such tokens; for a
	// single-segment token a whole-path substitution would also rewrite
	// ancestor segments that have not been renamed yet.
	SpansSegments() bool

	// Describe names the kind of content change for prompts and logs.
	Describe() string
}

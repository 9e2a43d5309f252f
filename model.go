package templatize

type Options struct {
	Paths    bool
	Contents bool
	DryRun   bool
}

// Result accumulates what one traversal touched. FilesProcessed counts
// every visited file, changed or not.
type Result struct {
	FilesProcessed int
	PathsRenamed   int
	ContentChanges int
}

type ContentChange struct {
	Path        string
	Old         string
	New         string
	Description string
}

type PathChange struct {
	OldPath string
	NewPath string
	Kind    string
}

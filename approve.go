package templatize

// Approver decides whether a detected change is applied. The walker asks
// before every mutation; a denial skips the mutation and its counter.
type Approver interface {
	Content(change ContentChange) (bool, error)
	Path(change PathChange) (bool, error)
}

// autoApprover is the non-interactive path: every change is applied.
type autoApprover struct{}

func (autoApprover) Content(ContentChange) (bool, error) { return true, nil }
func (autoApprover) Path(PathChange) (bool, error)       { return true, nil }

// ApproveAll returns the identity approver used outside interactive mode.
func ApproveAll() Approver { return autoApprover{} }

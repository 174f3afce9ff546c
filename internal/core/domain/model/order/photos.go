package order

// Photos holds the evidence image references attached to an order. The
// references are opaque to the core: photo storage resolves uploads to stable
// references before a transition is requested, and the state machine never
// interprets their content. An empty string means the slot is absent.
type Photos struct {
	Before string
	After  string
	Issue  string
}

// IsZero reports whether no photo reference is present at all.
func (p Photos) IsZero() bool {
	return p == Photos{}
}

// HasBeforeAndAfter reports whether both references required for a
// successful completion are present.
func (p Photos) HasBeforeAndAfter() bool {
	return p.Before != "" && p.After != ""
}

// HasIssueEvidence reports whether the evidence required to mark an order
// unable is present: a before photo or a dedicated issue photo.
func (p Photos) HasIssueEvidence() bool {
	return p.Before != "" || p.Issue != ""
}

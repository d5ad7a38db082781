package models

// ChangeSet is the outcome of diffing one remote snapshot against the local
// mirror. The three groups are disjoint by construction and are meant to be
// committed as a single unit of work.
type ChangeSet struct {
	// Insert holds remote cases with no local row yet.
	Insert []Case

	// Update holds remote cases whose local content diverged.
	Update []Case

	// Delete holds ids present locally but absent from the remote snapshot.
	Delete []string
}

// Empty reports whether applying the change set would be a no-op.
func (cs ChangeSet) Empty() bool {
	return len(cs.Insert) == 0 && len(cs.Update) == 0 && len(cs.Delete) == 0
}

// Size returns the total number of mutations in the change set.
func (cs ChangeSet) Size() int {
	return len(cs.Insert) + len(cs.Update) + len(cs.Delete)
}

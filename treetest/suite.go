package treetest

// Suite is a named grouping node owning an ordered list of cases and an
// ordered list of nested suites. Ownership is strictly tree shaped: a
// suite belongs to at most one parent, enforced by construction (append
// to exactly one parent), not by runtime checks.
type Suite struct {
	name     string
	cases    []*Case
	children []*Suite

	// stats is a derived snapshot, valid only immediately after a
	// Recompute pass.
	stats Stats
}

// NewSuite creates an empty suite. A suite with no cases and no children
// is legal; it reports all-zero statistics.
func NewSuite(name string) *Suite {
	return &Suite{name: name}
}

// Name returns the suite's display name.
func (s *Suite) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// AddChild appends child to s's nested suites, preserving insertion
// order. A nil receiver or child is a silent no-op.
func (s *Suite) AddChild(child *Suite) {
	if s == nil || child == nil {
		return
	}
	s.children = append(s.children, child)
}

// AddCase appends c to the suite's own cases, preserving insertion order.
// A nil receiver or case is a silent no-op.
func (s *Suite) AddCase(c *Case) {
	if s == nil || c == nil {
		return
	}
	s.cases = append(s.cases, c)
}

// Cases returns a snapshot of the suite's directly owned cases.
func (s *Suite) Cases() []*Case {
	if s == nil || len(s.cases) == 0 {
		return nil
	}
	out := make([]*Case, len(s.cases))
	copy(out, s.cases)
	return out
}

// Children returns a snapshot of the suite's nested suites.
func (s *Suite) Children() []*Suite {
	if s == nil || len(s.children) == 0 {
		return nil
	}
	out := make([]*Suite, len(s.children))
	copy(out, s.children)
	return out
}

// Stats returns the aggregate snapshot from the last Recompute pass.
// It is stale once any outcome anywhere in the subtree changes.
func (s *Suite) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return s.stats
}

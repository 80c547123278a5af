package treetest

// Func is a single test body. It returns exactly one status and classifies
// its own result; the harness does not interpret it further.
type Func func() Status

// Case is a named leaf unit holding an ordered, append-only log of
// recorded outcomes. Outcomes are recorded either manually at any time or
// automatically, exactly once, when a run pass reaches a case whose log is
// still empty.
type Case struct {
	name    string
	fn      Func
	results []Status
}

// NewCase creates a test case. fn may be nil when all outcomes are
// supplied manually via AddResult or AddResults.
func NewCase(name string, fn Func) *Case {
	return &Case{name: name, fn: fn}
}

// Name returns the case's display name.
func (c *Case) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// AddResult appends one outcome to the case's log. Insertion order is
// preserved for display. A nil receiver is a no-op.
func (c *Case) AddResult(s Status) {
	if c == nil {
		return
	}
	c.results = append(c.results, s)
}

// AddResults appends a batch of outcomes in argument order. It is
// equivalent to calling AddResult once per status.
func (c *Case) AddResults(statuses ...Status) {
	if c == nil {
		return
	}
	for _, s := range statuses {
		c.AddResult(s)
	}
}

// Results returns a snapshot of the recorded outcomes in insertion order.
func (c *Case) Results() []Status {
	if c == nil || len(c.results) == 0 {
		return nil
	}
	out := make([]Status, len(c.results))
	copy(out, c.results)
	return out
}

// invoke runs the case's function when no outcomes were recorded yet.
// Manually recorded results take precedence and suppress execution.
func (c *Case) invoke() {
	if c == nil || c.fn == nil || len(c.results) > 0 {
		return
	}
	c.AddResult(c.fn())
}

package treetest

// Stats aggregates per-status outcome counts over a suite subtree.
type Stats struct {
	Success              int
	UnexpectedOutput     int
	ExpectedBuildError   int
	BuildError           int
	ExpectedRuntimeError int
	RuntimeError         int
}

// Total returns the number of recorded outcomes across all kinds.
func (st Stats) Total() int {
	return st.Success + st.UnexpectedOutput +
		st.ExpectedBuildError + st.BuildError +
		st.ExpectedRuntimeError + st.RuntimeError
}

func (st *Stats) record(s Status) {
	switch s {
	case Success:
		st.Success++
	case UnexpectedOutput:
		st.UnexpectedOutput++
	case ExpectedBuildError:
		st.ExpectedBuildError++
	case BuildError:
		st.BuildError++
	case ExpectedRuntimeError:
		st.ExpectedRuntimeError++
	case RuntimeError:
		st.RuntimeError++
	}
}

func (st *Stats) add(other Stats) {
	st.Success += other.Success
	st.UnexpectedOutput += other.UnexpectedOutput
	st.ExpectedBuildError += other.ExpectedBuildError
	st.BuildError += other.BuildError
	st.ExpectedRuntimeError += other.ExpectedRuntimeError
	st.RuntimeError += other.RuntimeError
}

// Recompute derives the suite's statistics snapshot from scratch: every
// outcome of the directly owned cases, plus the freshly recomputed
// statistics of every child suite, component-wise. There is no
// incremental update; a full pass runs before every render.
func (s *Suite) Recompute() {
	if s == nil {
		return
	}
	s.stats = Stats{}
	for _, c := range s.cases {
		for _, r := range c.results {
			s.stats.record(r)
		}
	}
	for _, child := range s.children {
		child.Recompute()
		s.stats.add(child.stats)
	}
}

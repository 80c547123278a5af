package treetest

// Status is the recorded result of one test execution or one manually
// recorded assertion. The harness never inspects why a test produced a
// given status; classification is entirely up to the test function.
type Status int

const (
	// Success indicates the test produced the expected output.
	Success Status = iota
	// UnexpectedOutput indicates the test ran but its output differed.
	UnexpectedOutput
	// ExpectedBuildError indicates a build failure the test anticipated.
	ExpectedBuildError
	// BuildError indicates an unanticipated build failure.
	BuildError
	// ExpectedRuntimeError indicates a runtime failure the test anticipated.
	ExpectedRuntimeError
	// RuntimeError indicates an unanticipated runtime failure.
	RuntimeError
)

// Glyph returns the single-character marker drawn for a status:
// K for output checks, B for build errors, R for runtime errors.
func (s Status) Glyph() string {
	switch s {
	case Success, UnexpectedOutput:
		return "K"
	case ExpectedBuildError, BuildError:
		return "B"
	case ExpectedRuntimeError, RuntimeError:
		return "R"
	default:
		return "?"
	}
}

// Expected reports whether the status is an anticipated error form.
// Anticipated errors draw muted; unanticipated ones draw colored.
func (s Status) Expected() bool {
	return s == ExpectedBuildError || s == ExpectedRuntimeError
}

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case UnexpectedOutput:
		return "unexpected output"
	case ExpectedBuildError:
		return "expected build error"
	case BuildError:
		return "build error"
	case ExpectedRuntimeError:
		return "expected runtime error"
	case RuntimeError:
		return "runtime error"
	default:
		return "unknown"
	}
}

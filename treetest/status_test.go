package treetest

import "testing"

func TestStatus_Glyph_When_AllStatusesCovered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		glyph  string
	}{
		{Success, "K"},
		{UnexpectedOutput, "K"},
		{ExpectedBuildError, "B"},
		{BuildError, "B"},
		{ExpectedRuntimeError, "R"},
		{RuntimeError, "R"},
		{Status(99), "?"},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			if got := tc.status.Glyph(); got != tc.glyph {
				t.Errorf("Glyph(%v) = %q, want %q", tc.status, got, tc.glyph)
			}
		})
	}
}

func TestStatus_Expected_When_AnticipatedErrorForms(t *testing.T) {
	t.Parallel()

	expected := []Status{ExpectedBuildError, ExpectedRuntimeError}
	for _, s := range expected {
		if !s.Expected() {
			t.Errorf("Expected(%v) = false, want true", s)
		}
	}

	unexpected := []Status{Success, UnexpectedOutput, BuildError, RuntimeError}
	for _, s := range unexpected {
		if s.Expected() {
			t.Errorf("Expected(%v) = true, want false", s)
		}
	}
}

func TestStatus_String_When_AllStatusesCovered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		text   string
	}{
		{Success, "success"},
		{UnexpectedOutput, "unexpected output"},
		{ExpectedBuildError, "expected build error"},
		{BuildError, "build error"},
		{ExpectedRuntimeError, "expected runtime error"},
		{RuntimeError, "runtime error"},
		{Status(-1), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.text {
			t.Errorf("String(%d) = %q, want %q", int(tc.status), got, tc.text)
		}
	}
}

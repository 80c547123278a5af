package theme

import "testing"

func TestByName_ReturnsMono_When_MonoRequested(t *testing.T) {
	t.Parallel()

	th := ByName("mono")
	if th.Name != "mono" {
		t.Errorf("ByName(\"mono\").Name = %q, want \"mono\"", th.Name)
	}
	if got := th.Error.Render("B"); got != "B" {
		t.Errorf("mono theme must render plain text, got %q", got)
	}
}

func TestByName_FallsBackToDefault_When_NameUnknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "nope", "orca"} {
		th := ByName(name)
		if th.Name != "default" {
			t.Errorf("ByName(%q).Name = %q, want \"default\"", name, th.Name)
		}
	}
}

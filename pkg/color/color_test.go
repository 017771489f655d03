package color_test

import (
	"nova/pkg/color"
	"strings"
	"testing"
)

func TestColorDisabled(t *testing.T) {
	color.EnableColor(false)
	defer color.EnableColor(true)

	if color.IsColorEnabled() {
		t.Fatal("expected colour to be disabled")
	}

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"bright red", color.BrightRedText},
		{"green", color.GreenText},
		{"yellow", color.YellowText},
		{"blue", color.BlueText},
		{"cyan", color.CyanText},
		{"gray", color.GrayText},
		{"bold", color.BoldText},
	}

	for _, test := range tests {
		if got := test.fn("text"); got != "text" {
			t.Errorf("%s: expected plain text, got %q", test.name, got)
		}
	}

	if got := color.Line(7); got != "Line: 7" {
		t.Errorf("expected %q, got %q", "Line: 7", got)
	}
}

func TestColorEnabled(t *testing.T) {
	color.EnableColor(true)

	got := color.BrightRedText("boom")
	if !strings.Contains(got, "boom") {
		t.Errorf("expected styled text to contain the input, got %q", got)
	}
	if !strings.HasPrefix(got, "\x1b[") {
		t.Errorf("expected an escape sequence, got %q", got)
	}
}

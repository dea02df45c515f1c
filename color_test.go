package ansiterm

import "testing"

func TestStyleModifierApplyOverlaysOnlyNonNilFields(t *testing.T) {
	base := Style{Fg: Named(ColorRed), Bold: true}
	bg := Named(ColorBlue)
	m := StyleModifier{Bg: &bg}

	got := m.Apply(base)
	if got.Fg != Named(ColorRed) {
		t.Errorf("Fg should be untouched, got %+v", got.Fg)
	}
	if !got.Bold {
		t.Errorf("Bold should be untouched, want true")
	}
	if got.Bg != bg {
		t.Errorf("Bg should be overlaid, got %+v", got.Bg)
	}
}

func TestStyleModifierResetDiscardsEverything(t *testing.T) {
	base := Style{Fg: Named(ColorRed), Bold: true, Underline: true}
	m := StyleModifier{Reset: true, Bold: boolPtr(true)}

	got := m.Apply(base)
	if got != DefaultStyle {
		t.Fatalf("Reset should discard prior style entirely, got %+v", got)
	}
}

func TestDimToBaseFoldsOntoNonDimHue(t *testing.T) {
	cases := []struct {
		in, want NamedColor
	}{
		{ColorBrightRed, ColorRed},
		{ColorBrightWhite, ColorWhite},
		{ColorGreen, ColorGreen}, // non-bright input passes through unchanged
	}
	for _, tc := range cases {
		if got := dimToBase(tc.in); got != tc.want {
			t.Errorf("dimToBase(%v): want %v, got %v", tc.in, tc.want, got)
		}
	}
}

package ansiterm

import "testing"

func TestDefaultGraphemeCellIsBlank(t *testing.T) {
	c := defaultGraphemeCell()
	if c.Grapheme != " " {
		t.Fatalf("want blank grapheme, got %q", c.Grapheme)
	}
	if c.Style != DefaultStyle {
		t.Fatalf("want default style, got %+v", c.Style)
	}
}

func TestGraphemeCellWidth(t *testing.T) {
	cases := []struct {
		grapheme string
		want     int
	}{
		{"a", 1},
		{"", 0},
		{"あ", 2}, // hiragana A, a wide grapheme
	}
	for _, tc := range cases {
		c := GraphemeCell{Grapheme: tc.grapheme}
		if got := c.Width(); got != tc.want {
			t.Errorf("Width(%q): want %d, got %d", tc.grapheme, tc.want, got)
		}
	}
}

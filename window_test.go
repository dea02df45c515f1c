package ansiterm_test

import (
	"testing"

	"github.com/danielgatis/go-ansicode"

	"github.com/ptyshelf/ansiterm"
	"github.com/ptyshelf/ansiterm/internal/faketerm"
)

func drawAfter(t *testing.T, width, height int, input string) []string {
	t.Helper()

	dual := ansiterm.NewDualWindow()
	dual.SetSize(width, height)
	decoder := ansicode.NewDecoder(dual)
	decoder.Write([]byte(input))

	dual.Current().SetShowCursor(false)

	ft := faketerm.WithSize(width, height)
	dual.Current().Draw(ft, ansiterm.RenderingHints{})
	return ft.Rows()
}

func TestDrawEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		input         string
		want          []string
	}{
		{"empty", 5, 1, "", []string{"_____"}},
		{"single char", 5, 1, "t", []string{"t____"}},
		{"partial", 5, 1, "test", []string{"test_"}},
		{"exact fit", 5, 1, "testy", []string{"testy"}},
		{"wraps and follows tail", 5, 1, "testyo", []string{"o____"}},
		{"two rows", 2, 2, "te\r\nst", []string{"te", "st"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := drawAfter(t, tc.width, tc.height, tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("row count: want %d, got %d (%v)", len(tc.want), len(got), got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("row %d: want %q, got %q", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestDrawZeroDimensionsDoesNotPanic(t *testing.T) {
	dual := ansiterm.NewDualWindow()
	dual.SetSize(0, 0)
	decoder := ansicode.NewDecoder(dual)
	decoder.Write([]byte("hello"))

	ft := faketerm.WithSize(0, 0)
	dual.Current().Draw(ft, ansiterm.RenderingHints{})
}

func TestDrawWithZeroWidthHostWindow(t *testing.T) {
	dual := ansiterm.NewDualWindow()
	dual.SetSize(5, 1)
	decoder := ansicode.NewDecoder(dual)
	decoder.Write([]byte("hi"))

	zeroWidth := faketerm.WithSize(0, 1)
	dual.Current().Draw(zeroWidth, ansiterm.RenderingHints{})
}

func TestScrollBackwardsThenToEndRestoresPinnedTail(t *testing.T) {
	dual := ansiterm.NewDualWindow()
	dual.SetSize(3, 2)
	decoder := ansicode.NewDecoder(dual)
	decoder.Write([]byte("aaa\r\nbbb\r\nccc\r\nddd\r\n"))

	w := dual.Current()
	if err := w.ScrollBackwards(); err != nil {
		t.Fatalf("ScrollBackwards: %v", err)
	}
	if err := w.ScrollToEnd(); err != nil {
		t.Fatalf("ScrollToEnd: %v", err)
	}

	ft := faketerm.WithSize(3, 2)
	w.SetShowCursor(false)
	w.Draw(ft, ansiterm.RenderingHints{})

	// The trailing CRLF leaves the cursor on a new last line holding one
	// blank cell, so the pinned tail shows "ddd" above that line.
	got := ft.Rows()
	want := []string{"ddd", " __"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

package ansiterm_test

import (
	"strings"
	"testing"

	"github.com/danielgatis/go-ansicode"

	"github.com/ptyshelf/ansiterm"
	"github.com/ptyshelf/ansiterm/internal/faketerm"
)

// feed decodes raw bytes against a fresh DualWindow sized width x height,
// with the cursor hidden so drawn rows reflect buffer content only.
func feed(t *testing.T, width, height int, input []byte) *ansiterm.DualWindow {
	t.Helper()
	dual := ansiterm.NewDualWindow()
	dual.SetSize(width, height)
	ansicode.NewDecoder(dual).Write(input)
	dual.Current().SetShowCursor(false)
	return dual
}

func TestSGRResetDropsEarlierAttributes(t *testing.T) {
	// Bold, then an unrelated Reset, then a plain write: the written cell
	// must carry the default style, not the bold one Reset was meant to
	// discard.
	dual := feed(t, 5, 1, []byte("\x1b[1mB\x1b[0mx"))

	line := dual.Current().Width() // sanity: width propagated
	if line != 5 {
		t.Fatalf("width not propagated: got %d", line)
	}

	ft := faketerm.WithSize(5, 1)
	dual.Current().Draw(ft, ansiterm.RenderingHints{})
	rows := ft.Rows()
	if rows[0] != "Bx___" {
		t.Fatalf("row 0: want %q, got %q", "Bx___", rows[0])
	}

	var cells []ansiterm.GraphemeCell
	dual.Current().Draw(cellRecorder{w: 5, h: 1, cells: &cells}, ansiterm.RenderingHints{})
	if len(cells) != 2 || !cells[0].Style.Bold || cells[1].Style != ansiterm.DefaultStyle {
		t.Fatalf("want bold %q then default-styled %q, got %+v", "B", "x", cells)
	}
}

// cellRecorder is a Window that keeps every cell Draw writes, styles
// included.
type cellRecorder struct {
	w, h  int
	cells *[]ansiterm.GraphemeCell
}

func (r cellRecorder) Width() int             { return r.w }
func (r cellRecorder) Height() int            { return r.h }
func (r cellRecorder) SetOrigin(col, row int) {}
func (r cellRecorder) WritePreformatted(cells []ansiterm.GraphemeCell) {
	*r.cells = append(*r.cells, cells...)
}
func (r cellRecorder) WrapLine() {}

func TestAlternateScreenSwapPreservesPrimaryContent(t *testing.T) {
	dual := ansiterm.NewDualWindow()
	dual.SetSize(4, 1)
	decoder := ansicode.NewDecoder(dual)

	decoder.Write([]byte("home"))
	if dual.Active() != ansiterm.BufferPrimary {
		t.Fatalf("expected primary active before swap")
	}

	decoder.Write([]byte("\x1b[?1049h"))
	if dual.Active() != ansiterm.BufferAlternate {
		t.Fatalf("expected alternate active after swap-in")
	}
	decoder.Write([]byte("alt!"))

	decoder.Write([]byte("\x1b[?1049l"))
	if dual.Active() != ansiterm.BufferPrimary {
		t.Fatalf("expected primary active after swap-out")
	}

	dual.Primary().SetShowCursor(false)
	ft := faketerm.WithSize(4, 1)
	dual.Primary().Draw(ft, ansiterm.RenderingHints{})
	if got := ft.Rows()[0]; got != "home" {
		t.Fatalf("primary content not preserved across swap: got %q", got)
	}
}

func TestClearScreenAllEmptiesVisibleRegion(t *testing.T) {
	dual := feed(t, 3, 2, []byte("aaa\r\nbbb\x1b[2J"))

	ft := faketerm.WithSize(3, 2)
	dual.Current().Draw(ft, ansiterm.RenderingHints{})
	for i, row := range ft.Rows() {
		if row != "___" {
			t.Errorf("row %d: want blank, got %q", i, row)
		}
	}
}

func TestClearLineRightPreservesLeftContent(t *testing.T) {
	dual := feed(t, 5, 1, []byte("hello\x1b[3G\x1b[K"))

	ft := faketerm.WithSize(5, 1)
	dual.Current().Draw(ft, ansiterm.RenderingHints{})
	if got := ft.Rows()[0]; got != "he___" {
		t.Fatalf("want %q, got %q", "he___", got)
	}
}

func TestCSIParameterCountBeyondSixteenIsDroppedNotCorrupting(t *testing.T) {
	// An absurdly long parameter list for a move-forward CSI must not panic
	// or desync the parser; the cursor should still end up writable.
	params := "\x1b[1;2;3;4;5;6;7;8;9;10;11;12;13;14;15;16;17;18C"
	dual := feed(t, 5, 1, []byte(params+"x"))

	ft := faketerm.WithSize(5, 1)
	dual.Current().Draw(ft, ansiterm.RenderingHints{})
	row := ft.Rows()[0]
	if !strings.Contains(row, "x") {
		t.Fatalf("expected the %q written after the sequence to be drawn, got %q", "x", row)
	}
}

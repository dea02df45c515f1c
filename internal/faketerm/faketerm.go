// Package faketerm is a test-only hostview.Window that records what a
// TerminalWindow draws into a fixed-size grid, so tests can assert on the
// exact visible rows the way the original implementation's test suite used
// unsegen's FakeTerminal/assert_looks_like harness.
package faketerm

import (
	"fmt"
	"strings"

	"github.com/ptyshelf/ansiterm"
)

// FakeTerm is a width x height grid of runes, starting filled with '_'
// (matching spec.md §8's end-to-end scenario convention), that implements
// ansiterm.Window.
type FakeTerm struct {
	width, height int
	grid          [][]rune

	row, col int
}

// WithSize returns a FakeTerm of the given dimensions, every cell '_'.
func WithSize(width, height int) *FakeTerm {
	f := &FakeTerm{width: width, height: height}
	f.grid = make([][]rune, height)
	for y := range f.grid {
		f.grid[y] = make([]rune, width)
		for x := range f.grid[y] {
			f.grid[y][x] = '_'
		}
	}
	return f
}

func (f *FakeTerm) Width() int  { return f.width }
func (f *FakeTerm) Height() int { return f.height }

func (f *FakeTerm) SetOrigin(col, row int) {
	f.col = col
	f.row = row
}

// WritePreformatted writes cells starting at the current position, wrapping
// to the next row when it reaches the grid's width. Writes to rows outside
// [0,height) — including negative rows from a SetOrigin clip — are silently
// dropped, the same clipping unsegen's Window does at its boundary.
func (f *FakeTerm) WritePreformatted(cells []ansiterm.GraphemeCell) {
	for _, c := range cells {
		if f.row >= 0 && f.row < f.height && f.col >= 0 && f.col < f.width {
			r := []rune(c.Grapheme)
			if len(r) > 0 {
				f.grid[f.row][f.col] = r[0]
			}
		}
		f.col++
		if f.col >= f.width {
			f.col = 0
			f.row++
		}
	}
}

func (f *FakeTerm) WrapLine() {
	f.row++
	f.col = 0
}

// Rows returns the grid's rows as strings, top to bottom.
func (f *FakeTerm) Rows() []string {
	out := make([]string, f.height)
	for y, row := range f.grid {
		out[y] = string(row)
	}
	return out
}

// AssertLooksLike compares the grid's rows against want (one string per
// row) and returns a descriptive error on mismatch.
func (f *FakeTerm) AssertLooksLike(want ...string) error {
	got := f.Rows()
	if len(got) != len(want) {
		return fmt.Errorf("faketerm: expected %d rows, got %d", len(want), len(got))
	}
	for y := range want {
		if got[y] != want[y] {
			return fmt.Errorf("faketerm: row %d: want %q, got %q\nfull:\n%s", y, want[y], got[y], strings.Join(got, "\n"))
		}
	}
	return nil
}

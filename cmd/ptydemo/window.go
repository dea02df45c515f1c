package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ptyshelf/ansiterm"
)

// termWindow is a minimal hostview.Window that paints straight to the real
// terminal: it turns ansiterm's Style attributes (bold, italic, underline,
// inverse) into plain SGR escapes itself. Foreground and background colors
// are not rendered.
type termWindow struct {
	width, height int
	row           int
}

func (w termWindow) Width() int  { return w.width }
func (w termWindow) Height() int { return w.height }

func (w termWindow) SetOrigin(col, row int) {
	fmt.Fprint(os.Stdout, "\x1b[H\x1b[2J")
}

func (w termWindow) WritePreformatted(cells []ansiterm.GraphemeCell) {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(sgrFor(c.Style))
		b.WriteString(c.Grapheme)
	}
	b.WriteString("\x1b[0m")
	fmt.Fprint(os.Stdout, b.String())
}

func (w termWindow) WrapLine() {
	fmt.Fprint(os.Stdout, "\r\n")
}

func sgrFor(s ansiterm.Style) string {
	var b strings.Builder
	b.WriteString("\x1b[0")
	if s.Bold {
		b.WriteString(";1")
	}
	if s.Italic {
		b.WriteString(";3")
	}
	if s.Underline {
		b.WriteString(";4")
	}
	if s.Inverse {
		b.WriteString(";7")
	}
	b.WriteString("m")
	return b.String()
}

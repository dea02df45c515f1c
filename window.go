package ansiterm

// Window is the host drawing surface a TerminalWindow projects its visible
// rows onto. It is a narrow collaborator interface: the host owns layout,
// palette resolution, and actual screen painting; this package only ever
// calls WritePreformatted with styled cells and WrapLine to advance a row.
type Window interface {
	Width() int
	Height() int
	// SetOrigin positions the draw cursor before the first write. row may
	// be negative, meaning the first rows written scroll off the top of
	// the window and must be clipped rather than drawn — the host's own
	// cursor implementation is expected to discard those, the same way an
	// unsegen Window silently clips writes outside its bounds.
	SetOrigin(col, row int)
	// WritePreformatted writes cells starting at the current draw row,
	// wrapping across the window's width as needed.
	WritePreformatted(cells []GraphemeCell)
	// WrapLine moves the draw position to the start of the next row.
	WrapLine()
}

// RenderingHints carries host rendering context (focus state, etc.) into
// Draw. It is currently unused by this package — reserved the way the
// original's RenderingHints parameter was accepted but ignored by
// TerminalWindow::draw — but kept so a future host-driven hint (e.g.
// "this pane doesn't have focus, don't paint the cursor") has somewhere to
// live without changing the Draw signature again.
type RenderingHints struct {
	Focused bool
}

// TerminalWindow is the cursor, style, and scrollback-viewport state for one
// of the two buffers (primary/alternate) a DualWindow holds.
type TerminalWindow struct {
	width, height int
	buffer        *LineBuffer
	cursorState   CursorState

	// scrollbackOffset names the row just past the last displayed buffer
	// row; nil means "tail" (follow output).
	scrollbackOffset *int
	scrollStep       int
	cursorStyle      CursorStyle
	showCursor       bool
}

// NewTerminalWindow returns an empty, zero-sized window with the cursor
// visible and scrollStep 1.
func NewTerminalWindow() *TerminalWindow {
	return &TerminalWindow{
		buffer:      NewLineBuffer(),
		cursorState: defaultCursorState(),
		scrollStep:  1,
		cursorStyle: CursorStyleBlock,
		showCursor:  true,
	}
}

// SetWidth sets the soft viewport width used for wrap arithmetic.
func (w *TerminalWindow) SetWidth(width int) {
	w.width = width
	w.buffer.SetWindowWidth(width)
}

// SetHeight sets the number of rows Draw paints.
func (w *TerminalWindow) SetHeight(height int) {
	w.height = height
}

func (w *TerminalWindow) Width() int  { return w.width }
func (w *TerminalWindow) Height() int { return w.height }

// SetShowCursor toggles whether Draw paints the cursor cell.
func (w *TerminalWindow) SetShowCursor(show bool) {
	w.showCursor = show
}

// SetScrollStep sets how many rows ScrollForwards/ScrollBackwards move the
// viewport per call.
func (w *TerminalWindow) SetScrollStep(n int) {
	w.scrollStep = n
}

// SetCursorStyle sets how Draw paints the cell under the cursor.
func (w *TerminalWindow) SetCursorStyle(style CursorStyle) {
	w.cursorStyle = style
}

// SpaceDemand returns the minimum size this window asks for: both at least
// 1, so it can grow when there's room but never hogs space when the host
// shrinks it.
func (w *TerminalWindow) SpaceDemand() (width, height int) {
	return 1, 1
}

// currentScrollbackPos is the position of the first displayed row of the
// buffer that will NOT be displayed: the tail position when pinned, or the
// explicit offset otherwise.
func (w *TerminalWindow) currentScrollbackPos() int {
	if w.scrollbackOffset != nil {
		return *w.scrollbackOffset
	}
	return w.buffer.HeightAsDisplayed()
}

// withCursor runs f against a cursor view bound to this window's buffer and
// cursor state, then writes the (possibly mutated) state back. This mirrors
// the original's with_cursor helper: cheap to call per handler dispatch
// since it only swaps a small struct, never copies the buffer.
func (w *TerminalWindow) withCursor(f func(*cursor)) {
	c := newCursorView(w.buffer, w.cursorState)
	f(c)
	w.cursorState = c.state
}

// lineToBufferPosY maps a 0-based line index within the visible window
// region to an absolute buffer row.
func (w *TerminalWindow) lineToBufferPosY(line int) int {
	base := w.buffer.Len() - w.height
	if base < 0 {
		base = 0
	}
	return base + line
}

func (w *TerminalWindow) colToBufferPosX(col int) int {
	return col
}

// Draw is a pure projection: it temporarily toggles the cursor's style,
// paints the displayed rows into win, then reverts the toggle. It is a
// no-op when width, height are 0 or the buffer is empty.
func (w *TerminalWindow) Draw(win Window, _ RenderingHints) {
	height := win.Height()
	width := win.Width()
	if height == 0 || width == 0 || w.buffer.Len() == 0 {
		return
	}

	mod := w.cursorStyleModifier()

	if w.showCursor {
		w.withCursor(func(c *cursor) {
			if cell := c.currentCell(); cell != nil {
				cell.Style = mod.Apply(cell.Style)
			}
		})
	}

	scrollbackOffset := w.buffer.HeightAsDisplayed() - w.currentScrollbackPos()
	minimumYStart := scrollbackOffset + height
	startLine := w.buffer.Len() - minimumYStart
	if startLine < 0 {
		startLine = 0
	}

	retained := w.buffer.lines[startLine:]
	retainedHeight := 0
	for i := range retained {
		retainedHeight += retained[i].HeightForWidth(width)
	}
	yStart := minimumYStart - retainedHeight
	if yStart > 0 {
		yStart = 0
	}

	win.SetOrigin(0, yStart)
	for i := range retained {
		win.WritePreformatted(retained[i].content())
		win.WrapLine()
	}

	if w.showCursor {
		w.withCursor(func(c *cursor) {
			if cell := c.currentCell(); cell != nil {
				cell.Style = mod.Apply(cell.Style)
			}
		})
	}
}

// cursorStyleModifier returns the style toggle Draw applies to the cell
// under the cursor. It XOR-flips rather than sets, so applying it a second
// time (Draw's revert step) exactly undoes the first. Beam has no faithful
// rendering in a cell grid; underline-toggle is the documented
// approximation.
func (w *TerminalWindow) cursorStyleModifier() StyleModifier {
	switch w.cursorStyle {
	case CursorStyleUnderline, CursorStyleBeam:
		return StyleModifier{ToggleUnderline: true}
	default:
		return StyleModifier{ToggleInverse: true}
	}
}

// ErrScrollNoop is returned by the scroll operations when the requested
// move would not actually change what's displayed, and by ScrollForwards
// whenever it ends up back at the tail — the two-valued contract lets
// integrators bind keys without extra bookkeeping.
var ErrScrollNoop = scrollError("scroll: no-op")

type scrollError string

func (e scrollError) Error() string { return string(e) }

// ScrollForwards moves the viewport toward more recent output by
// scrollStep rows, snapping to the tail if that would overshoot it. A move
// that snaps to the tail returns ErrScrollNoop, even when the viewport did
// move.
func (w *TerminalWindow) ScrollForwards() error {
	current := w.currentScrollbackPos()
	candidate := current + w.scrollStep
	if candidate < w.buffer.HeightAsDisplayed() {
		w.scrollbackOffset = &candidate
		return nil
	}
	w.scrollbackOffset = nil
	return ErrScrollNoop
}

// ScrollBackwards moves the viewport toward older output by scrollStep
// rows, failing once the viewport is already showing the very first rows.
func (w *TerminalWindow) ScrollBackwards() error {
	current := w.currentScrollbackPos()
	if current > w.height {
		next := current - w.scrollStep
		if next < 0 {
			next = 0
		}
		w.scrollbackOffset = &next
		return nil
	}
	return ErrScrollNoop
}

// ScrollToBeginning jumps the viewport to the very start of the buffer.
func (w *TerminalWindow) ScrollToBeginning() error {
	current := w.currentScrollbackPos()
	if current > w.height {
		top := w.height
		w.scrollbackOffset = &top
		return nil
	}
	return ErrScrollNoop
}

// ScrollToEnd un-pins the viewport back to the tail.
func (w *TerminalWindow) ScrollToEnd() error {
	if w.scrollbackOffset != nil {
		w.scrollbackOffset = nil
		return nil
	}
	return ErrScrollNoop
}

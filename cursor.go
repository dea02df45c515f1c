package ansiterm

// CursorStyle selects how draw() paints the cell under the cursor. Beam has
// no faithful rendering in a cell grid; underline-toggle is the documented
// approximation (matching the original implementation's comment on this
// exact gap).
type CursorStyle int

const (
	CursorStyleBlock CursorStyle = iota
	CursorStyleUnderline
	CursorStyleBeam
)

// CursorState is the mutable cursor position and active style applied on
// top of a LineBuffer when a Handler method runs. Row/Col may point past
// the end of a line or the buffer — writes there grow the buffer to make
// them valid.
type CursorState struct {
	Row, Col int
	Style    Style
	Wrap     bool
}

// defaultCursorState returns a cursor at the origin with the default style
// and wrapping enabled.
func defaultCursorState() CursorState {
	return CursorState{Style: DefaultStyle, Wrap: true}
}

// cursor binds a CursorState to the LineBuffer it writes into. It is the Go
// analogue of unsegen's Cursor<LineBuffer>: a short-lived view created,
// mutated, and torn back down around each Handler call.
type cursor struct {
	buf   *LineBuffer
	state CursorState
}

func newCursorView(buf *LineBuffer, state CursorState) *cursor {
	return &cursor{buf: buf, state: state}
}

// currentCell returns the cell under the cursor, growing the buffer to
// materialize it if necessary. Returns nil only when Col < 0.
func (c *cursor) currentCell() *GraphemeCell {
	return c.buf.CellMut(c.state.Col, c.state.Row)
}

// write places one grapheme at the cursor and advances the column. A write
// that would exceed the soft viewport width wraps first: column to 0, row
// to row+1 (growing the buffer), then the grapheme lands on the new row.
// Checking before placement (rather than after) matters at the exact
// boundary — a line that ends precisely at the viewport width must not
// consume a row of its own until something is actually written past it, or
// an explicit carriage-return/linefeed pair immediately after would land
// one row too far down.
func (c *cursor) write(g string) {
	if c.state.Wrap && c.buf.windowWidth > 0 && c.state.Col >= c.buf.windowWidth {
		c.state.Col = 0
		c.state.Row++
	}
	cell := c.buf.CellMut(c.state.Col, c.state.Row)
	if cell != nil {
		cell.Grapheme = g
		cell.Style = c.state.Style
	}
	c.state.Col++
}

func (c *cursor) carriageReturn() {
	c.state.Col = 0
}

// linefeed advances to the next row and materializes it by growing the
// buffer (and that row, with blank cells, up to the cursor column) without
// writing anything, so the net effect is "row+1, column unchanged".
func (c *cursor) linefeed() {
	col := c.state.Col
	c.state.Row++
	c.buf.CellMut(c.state.Col, c.state.Row)
	c.state.Col = col
}

func (c *cursor) backspace() {
	if c.state.Col > 0 {
		c.state.Col--
	}
}

func (c *cursor) moveTo(x, y int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	c.state.Col = x
	c.state.Row = y
}

func (c *cursor) moveToX(x int) {
	if x < 0 {
		x = 0
	}
	c.state.Col = x
}

func (c *cursor) moveToY(y int) {
	if y < 0 {
		y = 0
	}
	c.state.Row = y
}

func (c *cursor) moveLeft() {
	if c.state.Col > 0 {
		c.state.Col--
	}
}

func (c *cursor) moveRight() {
	c.state.Col++
}

// moveUp/moveDown clamp at 0 and never move the row above the buffer's top;
// this matches the original implementation's documented ambiguity (moves
// clamp against the full buffer, not just the visible window).
func (c *cursor) moveUp(n int) {
	c.state.Row -= n
	if c.state.Row < 0 {
		c.state.Row = 0
	}
}

func (c *cursor) moveDown(n int) {
	c.state.Row += n
	if c.state.Row < 0 {
		c.state.Row = 0
	}
}

func (c *cursor) clearLineRight() {
	line := c.buf.Line(c.state.Row)
	if line == nil {
		return
	}
	if c.state.Col < line.Length() {
		line.cells = line.cells[:c.state.Col]
	}
}

func (c *cursor) clearLineLeft() {
	line := c.buf.Line(c.state.Row)
	if line == nil {
		return
	}
	end := c.state.Col + 1
	if end > line.Length() {
		end = line.Length()
	}
	for i := 0; i < end; i++ {
		line.cells[i] = defaultGraphemeCell()
	}
}

func (c *cursor) clearLine() {
	line := c.buf.Line(c.state.Row)
	if line == nil {
		return
	}
	line.Clear()
}

// setStyleModifier resets the active style and applies m on top of default
// — used for SGR Reset followed immediately by another attribute.
func (c *cursor) setStyleModifier(m StyleModifier) {
	c.state.Style = m.Apply(DefaultStyle)
}

// applyStyleModifier folds m into the currently active style, leaving
// fields m doesn't mention untouched.
func (c *cursor) applyStyleModifier(m StyleModifier) {
	c.state.Style = m.Apply(c.state.Style)
}

package ansiterm

import (
	"image/color"
	"log"

	"github.com/danielgatis/go-ansicode"
)

// BufferSelector names which of a DualWindow's two TerminalWindows is
// currently receiving handler calls.
type BufferSelector int

const (
	BufferPrimary BufferSelector = iota
	BufferAlternate
)

// DualWindow holds the primary and alternate screen buffers a real terminal
// multiplexes between and implements the full go-ansicode Handler interface
// on their behalf. Operations spec.md's component design calls out as
// "fully implemented" mutate the active TerminalWindow; everything else logs
// at warning level and leaves state untouched, the same split the original
// implementation's Handler impl for DualWindow drew.
type DualWindow struct {
	primary   *TerminalWindow
	alternate *TerminalWindow
	active    BufferSelector
}

// NewDualWindow returns a DualWindow with both buffers empty and the primary
// buffer active.
func NewDualWindow() *DualWindow {
	return &DualWindow{
		primary:   NewTerminalWindow(),
		alternate: NewTerminalWindow(),
	}
}

// SetScrollStep propagates the scrollback step to both buffers.
func (d *DualWindow) SetScrollStep(n int) {
	d.primary.SetScrollStep(n)
	d.alternate.SetScrollStep(n)
}

// SetInitialCursorStyle sets the initial cursor rendering style on both buffers,
// independent of the DEC private mode the ansicode.Handler's SetCursorStyle
// method reacts to.
func (d *DualWindow) SetInitialCursorStyle(style CursorStyle) {
	d.primary.SetCursorStyle(style)
	d.alternate.SetCursorStyle(style)
}

// Current returns the TerminalWindow currently receiving handler calls.
func (d *DualWindow) Current() *TerminalWindow {
	if d.active == BufferAlternate {
		return d.alternate
	}
	return d.primary
}

// Primary and Alternate expose the two buffers directly, mainly so a widget
// façade can Draw whichever one is active without re-deriving the selector.
func (d *DualWindow) Primary() *TerminalWindow   { return d.primary }
func (d *DualWindow) Alternate() *TerminalWindow { return d.alternate }
func (d *DualWindow) Active() BufferSelector     { return d.active }

// SetSize propagates a resize to both buffers; go-ansicode dispatches
// TextAreaSizeChars/TextAreaSizePixels queries against whichever is active,
// so both must stay in sync with the host window geometry.
func (d *DualWindow) SetSize(width, height int) {
	d.primary.SetWidth(width)
	d.primary.SetHeight(height)
	d.alternate.SetWidth(width)
	d.alternate.SetHeight(height)
}

func warnUnimplemented(op string) {
	log.Printf("ansiterm: unimplemented: %s", op)
}

var _ ansicode.Handler = (*DualWindow)(nil)

// --- Cursor movement and text input -----------------------------------

func (d *DualWindow) Input(r rune) {
	d.Current().withCursor(func(c *cursor) {
		c.write(string(r))
	})
}

func (d *DualWindow) CarriageReturn() {
	d.Current().withCursor(func(c *cursor) {
		c.carriageReturn()
	})
}

func (d *DualWindow) LineFeed() {
	d.Current().withCursor(func(c *cursor) {
		c.linefeed()
	})
}

func (d *DualWindow) Backspace() {
	d.Current().withCursor(func(c *cursor) {
		c.backspace()
	})
}

func (d *DualWindow) Goto(row, col int) {
	d.Current().withCursor(func(c *cursor) {
		c.moveTo(col, row)
	})
}

func (d *DualWindow) GotoCol(col int) {
	d.Current().withCursor(func(c *cursor) {
		c.moveToX(col)
	})
}

func (d *DualWindow) GotoLine(row int) {
	d.Current().withCursor(func(c *cursor) {
		c.moveToY(row)
	})
}

func (d *DualWindow) MoveForward(n int) {
	d.Current().withCursor(func(c *cursor) {
		for i := 0; i < n; i++ {
			c.moveRight()
		}
	})
}

func (d *DualWindow) MoveBackward(n int) {
	d.Current().withCursor(func(c *cursor) {
		for i := 0; i < n; i++ {
			c.moveLeft()
		}
	})
}

func (d *DualWindow) MoveUp(n int) {
	d.Current().withCursor(func(c *cursor) {
		c.moveUp(n)
	})
}

func (d *DualWindow) MoveDown(n int) {
	d.Current().withCursor(func(c *cursor) {
		c.moveDown(n)
	})
}

func (d *DualWindow) MoveDownCr(n int) {
	warnUnimplemented("MoveDownCr")
}

func (d *DualWindow) MoveUpCr(n int) {
	warnUnimplemented("MoveUpCr")
}

func (d *DualWindow) Tab(n int) {
	d.Current().withCursor(func(c *cursor) {
		for i := 0; i < n; i++ {
			c.write("\t")
		}
	})
}

func (d *DualWindow) MoveForwardTabs(n int) {
	warnUnimplemented("MoveForwardTabs")
}

func (d *DualWindow) MoveBackwardTabs(n int) {
	warnUnimplemented("MoveBackwardTabs")
}

func (d *DualWindow) HorizontalTabSet() {
	warnUnimplemented("HorizontalTabSet")
}

func (d *DualWindow) ClearTabs(mode ansicode.TabulationClearMode) {
	warnUnimplemented("ClearTabs")
}

// --- Clearing -----------------------------------------------------------

func (d *DualWindow) ClearLine(mode ansicode.LineClearMode) {
	d.Current().withCursor(func(c *cursor) {
		switch mode {
		case ansicode.LineClearModeRight:
			c.clearLineRight()
		case ansicode.LineClearModeLeft:
			c.clearLineLeft()
		case ansicode.LineClearModeAll:
			c.clearLine()
		}
	})
}

func (d *DualWindow) ClearScreen(mode ansicode.ClearMode) {
	w := d.Current()
	switch mode {
	case ansicode.ClearModeBelow:
		w.withCursor(func(c *cursor) {
			c.clearLineRight()
			for row := c.state.Row + 1; row < w.buffer.Len(); row++ {
				if line := w.buffer.Line(row); line != nil {
					line.Clear()
				}
			}
		})
	case ansicode.ClearModeAbove:
		w.withCursor(func(c *cursor) {
			for row := 0; row < c.state.Row; row++ {
				if line := w.buffer.Line(row); line != nil {
					line.Clear()
				}
			}
			c.clearLineLeft()
		})
	case ansicode.ClearModeAll:
		for row := w.lineToBufferPosY(0); row < w.buffer.Len(); row++ {
			w.buffer.Line(row).Clear()
		}
	case ansicode.ClearModeSaved:
		warnUnimplemented("ClearScreen: saved")
	}
}

func (d *DualWindow) InsertBlank(n int)      { warnUnimplemented("InsertBlank") }
func (d *DualWindow) InsertBlankLines(n int) { warnUnimplemented("InsertBlankLines") }
func (d *DualWindow) DeleteLines(n int)      { warnUnimplemented("DeleteLines") }
func (d *DualWindow) DeleteChars(n int)      { warnUnimplemented("DeleteChars") }
func (d *DualWindow) EraseChars(n int)       { warnUnimplemented("EraseChars") }
func (d *DualWindow) ScrollUp(n int)         { warnUnimplemented("ScrollUp") }
func (d *DualWindow) ScrollDown(n int)       { warnUnimplemented("ScrollDown") }
func (d *DualWindow) ReverseIndex()          { warnUnimplemented("ReverseIndex") }
func (d *DualWindow) Decaln()                { warnUnimplemented("Decaln") }
func (d *DualWindow) Substitute()            { warnUnimplemented("Substitute") }
func (d *DualWindow) ResetState()            { warnUnimplemented("ResetState") }

func (d *DualWindow) SaveCursorPosition()    { warnUnimplemented("SaveCursorPosition") }
func (d *DualWindow) RestoreCursorPosition() { warnUnimplemented("RestoreCursorPosition") }
func (d *DualWindow) SetScrollingRegion(top, bottom int) {
	warnUnimplemented("SetScrollingRegion")
}

// --- Style ---------------------------------------------------------------

func (d *DualWindow) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	d.Current().withCursor(func(c *cursor) {
		switch attr.Attr {
		case ansicode.CharAttributeReset:
			c.setStyleModifier(StyleModifier{Reset: true})
		case ansicode.CharAttributeBold:
			c.applyStyleModifier(StyleModifier{Bold: boolPtr(true)})
		case ansicode.CharAttributeItalic:
			c.applyStyleModifier(StyleModifier{Italic: boolPtr(true)})
		case ansicode.CharAttributeUnderline:
			c.applyStyleModifier(StyleModifier{Underline: boolPtr(true)})
		case ansicode.CharAttributeReverse:
			c.applyStyleModifier(StyleModifier{Inverse: boolPtr(true)})
		case ansicode.CharAttributeCancelBold:
			c.applyStyleModifier(StyleModifier{Bold: boolPtr(false)})
		case ansicode.CharAttributeCancelBoldDim:
			c.applyStyleModifier(StyleModifier{Bold: boolPtr(false)})
		case ansicode.CharAttributeCancelItalic:
			c.applyStyleModifier(StyleModifier{Italic: boolPtr(false)})
		case ansicode.CharAttributeCancelUnderline:
			c.applyStyleModifier(StyleModifier{Underline: boolPtr(false)})
		case ansicode.CharAttributeCancelReverse:
			c.applyStyleModifier(StyleModifier{Inverse: boolPtr(false)})
		case ansicode.CharAttributeForeground:
			fg := colorFromAttr(attr, true)
			c.applyStyleModifier(StyleModifier{Fg: colorPtr(fg)})
		case ansicode.CharAttributeBackground:
			bg := colorFromAttr(attr, false)
			c.applyStyleModifier(StyleModifier{Bg: colorPtr(bg)})
		case ansicode.CharAttributeDim,
			ansicode.CharAttributeBlinkSlow,
			ansicode.CharAttributeBlinkFast,
			ansicode.CharAttributeHidden,
			ansicode.CharAttributeStrike,
			ansicode.CharAttributeCancelBlink,
			ansicode.CharAttributeCancelHidden,
			ansicode.CharAttributeCancelStrike,
			ansicode.CharAttributeDoubleUnderline,
			ansicode.CharAttributeCurlyUnderline,
			ansicode.CharAttributeDottedUnderline,
			ansicode.CharAttributeDashedUnderline,
			ansicode.CharAttributeUnderlineColor:
			warnUnimplemented("SetTerminalCharAttribute: unsupported attribute")
		}
	})
}

func (d *DualWindow) SetCursorStyle(style ansicode.CursorStyle) {
	w := d.Current()
	switch int(style) % 3 {
	case 1:
		w.cursorStyle = CursorStyleUnderline
	case 2:
		w.cursorStyle = CursorStyleBeam
	default:
		w.cursorStyle = CursorStyleBlock
	}
}

// --- Modes ---------------------------------------------------------------

func (d *DualWindow) SetMode(mode ansicode.TerminalMode) {
	d.setMode(mode, true)
}

func (d *DualWindow) UnsetMode(mode ansicode.TerminalMode) {
	d.setMode(mode, false)
}

func (d *DualWindow) setMode(mode ansicode.TerminalMode, set bool) {
	switch mode {
	case ansicode.TerminalModeShowCursor:
		d.primary.SetShowCursor(set)
		d.alternate.SetShowCursor(set)
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		if set {
			d.active = BufferAlternate
		} else {
			d.active = BufferPrimary
		}
	default:
		warnUnimplemented("SetMode/UnsetMode: unsupported mode")
	}
}

func (d *DualWindow) SetKeypadApplicationMode()   { warnUnimplemented("SetKeypadApplicationMode") }
func (d *DualWindow) UnsetKeypadApplicationMode() { warnUnimplemented("UnsetKeypadApplicationMode") }

func (d *DualWindow) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
	warnUnimplemented("SetKeyboardMode")
}
func (d *DualWindow) PushKeyboardMode(mode ansicode.KeyboardMode) {
	warnUnimplemented("PushKeyboardMode")
}
func (d *DualWindow) PopKeyboardMode(n int) { warnUnimplemented("PopKeyboardMode") }
func (d *DualWindow) ReportKeyboardMode()    { warnUnimplemented("ReportKeyboardMode") }
func (d *DualWindow) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {
	warnUnimplemented("SetModifyOtherKeys")
}
func (d *DualWindow) ReportModifyOtherKeys() { warnUnimplemented("ReportModifyOtherKeys") }

func (d *DualWindow) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
	warnUnimplemented("ConfigureCharset")
}
func (d *DualWindow) SetActiveCharset(n int) { warnUnimplemented("SetActiveCharset") }

// --- Title, clipboard, colors, misc queries ------------------------------

func (d *DualWindow) SetTitle(title string) {}
func (d *DualWindow) PushTitle()             {}
func (d *DualWindow) PopTitle()              {}

func (d *DualWindow) ClipboardLoad(clipboard byte, terminator string) {
	warnUnimplemented("ClipboardLoad")
}
func (d *DualWindow) ClipboardStore(clipboard byte, data []byte) {
	warnUnimplemented("ClipboardStore")
}

func (d *DualWindow) SetColor(index int, c color.Color) { warnUnimplemented("SetColor") }
func (d *DualWindow) ResetColor(i int)                   { warnUnimplemented("ResetColor") }
func (d *DualWindow) SetDynamicColor(prefix string, index int, terminator string) {
	warnUnimplemented("SetDynamicColor")
}
func (d *DualWindow) SetHyperlink(hyperlink *ansicode.Hyperlink) {
	warnUnimplemented("SetHyperlink")
}

func (d *DualWindow) DeviceStatus(n int)     { warnUnimplemented("DeviceStatus") }
func (d *DualWindow) IdentifyTerminal(b byte) {
	warnUnimplemented("IdentifyTerminal")
}

func (d *DualWindow) TextAreaSizeChars() {
	warnUnimplemented("TextAreaSizeChars")
}
func (d *DualWindow) TextAreaSizePixels() {
	warnUnimplemented("TextAreaSizePixels")
}
func (d *DualWindow) CellSizePixels() { warnUnimplemented("CellSizePixels") }

func (d *DualWindow) SetWorkingDirectory(uri string) { warnUnimplemented("SetWorkingDirectory") }

func (d *DualWindow) ApplicationCommandReceived(data []byte) {
	warnUnimplemented("ApplicationCommandReceived")
}
func (d *DualWindow) PrivacyMessageReceived(data []byte) {
	warnUnimplemented("PrivacyMessageReceived")
}
func (d *DualWindow) StartOfStringReceived(data []byte) {
	warnUnimplemented("StartOfStringReceived")
}

func (d *DualWindow) SixelReceived(params [][]uint16, data []byte) {
	warnUnimplemented("SixelReceived")
}

// Bell is silently dropped: ringing a physical or visual bell is a host UI
// concern this package has no opinion on.
func (d *DualWindow) Bell() {}

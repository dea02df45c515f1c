// Package widget wires ansiterm's parser and buffer model to a real
// pseudoterminal, the way the original implementation's Terminal struct
// wired TerminalWindow/DualWindow to a PTY and exposed it as a single
// embeddable widget.
package widget

import (
	"fmt"
	"sync"

	"github.com/danielgatis/go-ansicode"

	"github.com/ptyshelf/ansiterm"
	"github.com/ptyshelf/ansiterm/ptyio"
)

// SlaveInputSink is re-exported from ansiterm so callers constructing a
// Widget don't need to import the root package just for this one type.
type SlaveInputSink = ansiterm.SlaveInputSink

// Window is re-exported from ansiterm for the same reason.
type Window = ansiterm.Window

// RenderingHints is re-exported from ansiterm for the same reason.
type RenderingHints = ansiterm.RenderingHints

// Widget is an embeddable pty-backed terminal: it owns a pseudoterminal, a
// background reader goroutine, and the DualWindow that accumulates parsed
// output. A host drives it by calling AddBytes once its SlaveInputSink has
// delivered pty output, ProcessInput to forward keystrokes (or move the
// scrollback viewport), and Draw to paint the current buffer.
type Widget struct {
	mu sync.Mutex

	pty     *ptyio.PTY
	dual    *ansiterm.DualWindow
	decoder *ansicode.Decoder

	scrollStep         int
	initialCursorStyle ansiterm.CursorStyle

	width, height int
}

// New opens a pseudoterminal and spawns its reader goroutine, which hands
// every chunk of pty output to sink. No child process is started — spawning
// one against SlaveName() is the host's job. The host decides when parsed
// bytes actually reach AddBytes: a sink that just forwards onto a channel
// lets the host call AddBytes from whatever goroutine owns the buffer,
// mirroring the original implementation's split between its background
// read_slave_input_loop and the caller-driven add_byte_input.
func New(sink SlaveInputSink, opts ...Option) (*Widget, error) {
	p, err := ptyio.Open()
	if err != nil {
		return nil, fmt.Errorf("widget: new: %w", err)
	}

	w := &Widget{
		pty:        p,
		dual:       ansiterm.NewDualWindow(),
		scrollStep: 1,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.dual.SetScrollStep(w.scrollStep)
	w.dual.SetInitialCursorStyle(w.initialCursorStyle)

	w.decoder = ansicode.NewDecoder(w.dual)
	go ptyio.ReadLoop(p, sinkAdapter{sink})

	return w, nil
}

// sinkAdapter satisfies ptyio.Sink in terms of the public SlaveInputSink,
// keeping ptyio independent of this package's types.
type sinkAdapter struct{ sink SlaveInputSink }

func (a sinkAdapter) ReceiveBytesFromPTY(data []byte) {
	a.sink.ReceiveBytesFromPTY(data)
}

// SlaveName returns the path of the pty's slave device, for a host to spawn
// a child process against.
func (w *Widget) SlaveName() string {
	return w.pty.SlaveName()
}

// AddBytes feeds raw pty output into the parser. Safe to call from the
// reader goroutine; it takes the widget's lock for the duration of the
// decode since parsing mutates the buffer Draw also reads.
func (w *Widget) AddBytes(data []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.decoder.Write(data)
}

// ProcessInput routes a host input event: PageUp/PageDown/Home/End move the
// scrollback viewport, everything else is forwarded raw to the pty.
func (w *Widget) ProcessInput(in Input) error {
	switch in.Key() {
	case KeyPageUp:
		return w.ScrollBackwards()
	case KeyPageDown:
		return w.ScrollForwards()
	case KeyHome:
		return w.ScrollToBeginning()
	case KeyEnd:
		return w.ScrollToEnd()
	default:
		if _, err := w.pty.Write(in.Raw()); err != nil {
			return fmt.Errorf("widget: process input: %w", err)
		}
		return nil
	}
}

// Write forwards raw bytes to the pty unchanged, for hosts that already parse
// keys into bytes themselves rather than building an Input.
func (w *Widget) Write(p []byte) (int, error) {
	return w.pty.Write(p)
}

// ScrollForwards, ScrollBackwards, ScrollToBeginning, and ScrollToEnd move
// the active buffer's scrollback viewport. See ansiterm.TerminalWindow for
// the two-valued no-op contract.
func (w *Widget) ScrollForwards() error    { return w.dual.Current().ScrollForwards() }
func (w *Widget) ScrollBackwards() error   { return w.dual.Current().ScrollBackwards() }
func (w *Widget) ScrollToBeginning() error { return w.dual.Current().ScrollToBeginning() }
func (w *Widget) ScrollToEnd() error       { return w.dual.Current().ScrollToEnd() }

// SpaceDemand returns the widget's minimum requested size.
func (w *Widget) SpaceDemand() (width, height int) {
	return w.dual.Current().SpaceDemand()
}

// Draw synchronizes the pty's window size with win's dimensions (issuing a
// TIOCSWINSZ resize when they differ) and paints the active buffer.
func (w *Widget) Draw(win Window, hints RenderingHints) {
	w.mu.Lock()
	defer w.mu.Unlock()

	width, height := win.Width(), win.Height()
	if width != w.width || height != w.height {
		w.width, w.height = width, height
		w.dual.SetSize(width, height)
		if err := w.pty.Resize(width, height, width, height); err != nil {
			warnResizeFailed(err)
		}
	}

	w.dual.Current().Draw(win, hints)
}

// Close tears down the pty. The reader goroutine exits on its next failed
// read once the master fd is gone.
func (w *Widget) Close() error {
	return w.pty.Close()
}

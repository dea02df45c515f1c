package widget

import "github.com/ptyshelf/ansiterm"

// Option configures a Widget during construction.
type Option func(*Widget)

// WithScrollStep sets how many rows each scrollback key press moves the
// viewport. Defaults to 1.
func WithScrollStep(n int) Option {
	return func(w *Widget) {
		if n > 0 {
			w.scrollStep = n
		}
	}
}

// WithCursorStyle sets the initial cursor rendering style.
func WithCursorStyle(style ansiterm.CursorStyle) Option {
	return func(w *Widget) {
		w.initialCursorStyle = style
	}
}

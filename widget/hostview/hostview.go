// Package hostview names the narrow set of types a host must implement to
// embed an ansiterm Widget: a drawing surface, an input event, and the sink
// a pty's reader goroutine delivers output to. They are plain aliases onto
// the widget package's own definitions — this package exists only so a host
// integration can depend on a stable, implementation-free import.
package hostview

import "github.com/ptyshelf/ansiterm/widget"

type Window = widget.Window
type RenderingHints = widget.RenderingHints
type Input = widget.Input
type Key = widget.Key
type SlaveInputSink = widget.SlaveInputSink

const (
	KeyOther    = widget.KeyOther
	KeyPageUp   = widget.KeyPageUp
	KeyPageDown = widget.KeyPageDown
	KeyHome     = widget.KeyHome
	KeyEnd      = widget.KeyEnd
)

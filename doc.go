// Package ansiterm embeds a UNIX pseudoterminal into a text-mode UI as a
// scrollable, drawable widget.
//
// A host application opens a [github.com/ptyshelf/ansiterm/widget.Widget],
// learns the slave-side device path, and spawns a child process (a shell,
// debugger, REPL, ...) attached to that slave. Bytes the child writes to the
// slave flow into the widget, where a VT/ANSI parser drives a two-dimensional
// cell buffer later rendered into a rectangular region of the host's screen.
// Keystrokes routed to the widget are forwarded as raw bytes back to the
// child.
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [DualWindow]: routes every parsed operation to whichever of the
//     primary/alternate [TerminalWindow] is active.
//   - [TerminalWindow]: cursor, style, and scrollback-viewport state sitting
//     on top of a [LineBuffer].
//   - [LineBuffer] / [Line] / [GraphemeCell]: the append-only, unbounded cell
//     model. Lines grow rightward on write, the buffer grows downward on
//     write; nothing is ever truncated.
//
// The pty itself and the goroutine that drains it live in
// github.com/ptyshelf/ansiterm/ptyio. The façade that wires parser, buffer,
// and pty together for a host application lives in
// github.com/ptyshelf/ansiterm/widget.
//
// # Non-goals
//
// This is not a full VT510 emulator: tabstops, scrolling regions, DECKPAM,
// character-set designation, origin mode, insert/delete line, save/restore
// cursor, reverse index, and device-status responses are parsed and silently
// discarded (with a diagnostic log entry) rather than corrupting state. It is
// not a multiplexer, does not spawn processes, and does not own a color
// palette — indexed and named colors pass through to whatever palette the
// host maintains.
package ansiterm

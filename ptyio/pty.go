// Package ptyio owns the pseudoterminal master/slave pair a Terminal widget
// embeds: opening it, resizing it, and bridging bytes in both directions.
// Unlike the pack's agent-runner example, which spawns a child with
// pty.StartWithSize, nothing here starts a process — process spawning is a
// host concern, out of this module's scope.
package ptyio

import (
	"fmt"
	"os"
	"sync"

	"github.com/creack/pty"
)

// PTY is a single open pseudoterminal pair. The zero value is not usable;
// construct one with Open.
type PTY struct {
	mu     sync.Mutex
	master *os.File
	slave  *os.File
}

// Open allocates a new pseudoterminal pair via posix_openpt/grantpt/unlockpt
// (wrapped by creack/pty) and keeps both ends open: the slave stays open on
// our side so the device node doesn't disappear between a child opening and
// closing it, the same reason the original Rust implementation's PTY::open
// held its own fd past handing out a name.
func Open() (*PTY, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("ptyio: open: %w", err)
	}
	return &PTY{master: master, slave: slave}, nil
}

// SlaveName returns the path of the pty's slave device (e.g. /dev/pts/4),
// for a host to hand to whatever process it spawns against this terminal.
func (p *PTY) SlaveName() string {
	return p.slave.Name()
}

// Write sends bytes to the pty master, guarded by the same mutex Resize and
// Close take — creack/pty hands back a plain *os.File, so there's no
// built-in synchronization between concurrent writers and an ioctl call.
// Read does not take the mutex, so a reader blocked in Read never holds up
// a Write or Resize.
func (p *PTY) Write(data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n, err := p.master.Write(data)
	if err != nil {
		return n, fmt.Errorf("ptyio: write: %w", err)
	}
	return n, nil
}

// Read reads one chunk of output from the pty master. Callers (the reader
// task) are expected to loop until Read returns an error.
func (p *PTY) Read(buf []byte) (int, error) {
	return p.master.Read(buf)
}

// Resize sets the pty's window size, propagating rows/cols and, when known,
// the pixel geometry — TIOCSWINSZ, via creack/pty.Setsize.
func (p *PTY) Resize(cols, rows, xpixels, ypixels int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := pty.Setsize(p.master, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
		X:    uint16(xpixels),
		Y:    uint16(ypixels),
	})
	if err != nil {
		return fmt.Errorf("ptyio: resize: %w", err)
	}
	return nil
}

// Close closes both the master and the slave-side handle this PTY has been
// holding open.
func (p *PTY) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	slaveErr := p.slave.Close()
	masterErr := p.master.Close()
	if masterErr != nil {
		return fmt.Errorf("ptyio: close master: %w", masterErr)
	}
	if slaveErr != nil {
		return fmt.Errorf("ptyio: close slave: %w", slaveErr)
	}
	return nil
}

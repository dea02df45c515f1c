// Command ptydemo spawns a shell behind an ansiterm Widget, puts the local
// terminal into raw mode, and bridges keystrokes and drawing so the widget
// can be exercised interactively. It exists for manual verification; it is
// not part of the library's public surface.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"golang.org/x/term"

	"github.com/ptyshelf/ansiterm/widget"
)

type stdinInput struct {
	raw []byte
}

func (i stdinInput) Raw() []byte    { return i.raw }
func (i stdinInput) Key() widget.Key { return widget.KeyOther }

type chanSink chan []byte

func (s chanSink) ReceiveBytesFromPTY(data []byte) {
	s <- data
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ptydemo:", err)
		os.Exit(1)
	}
}

func run() error {
	sink := make(chanSink, 64)

	w, err := widget.New(sink)
	if err != nil {
		return err
	}
	defer w.Close()

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=ansiterm")
	slave, err := os.OpenFile(w.SlaveName(), os.O_RDWR, 0)
	if err != nil {
		return err
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = slave, slave, slave
	cmd.SysProcAttr = setsidAttr()
	if err := cmd.Start(); err != nil {
		return err
	}
	slave.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	go func() {
		for data := range sink {
			w.AddBytes(data)
		}
	}()

	go func() {
		buf := make([]byte, 1024)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				raw := make([]byte, n)
				copy(raw, buf[:n])
				w.ProcessInput(stdinInput{raw: raw})
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		time.Sleep(33 * time.Millisecond)
		width, height, err := term.GetSize(fd)
		if err != nil {
			return err
		}
		w.Draw(termWindow{width: width, height: height}, widget.RenderingHints{Focused: true})
	}
}

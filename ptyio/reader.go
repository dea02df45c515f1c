package ptyio

// Sink receives bytes read off a PTY's master fd. It mirrors the widget
// package's SlaveInputSink so ptyio stays independent of the ansiterm
// package — a host could wire a PTY straight to any byte sink without
// pulling in the parser at all.
type Sink interface {
	ReceiveBytesFromPTY(data []byte)
}

// ReadLoop reads from p in 1 KiB chunks, handing each chunk (copied into a
// freshly allocated slice, since Read reuses its buffer) to sink, until Read
// returns an error — EOF, or Linux ErrClosed/EIO once every slave-side
// writer has closed. It is meant to run in its own goroutine for the
// lifetime of the PTY.
func ReadLoop(p *PTY, sink Sink) {
	buf := make([]byte, 1024)
	for {
		n, err := p.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			sink.ReceiveBytesFromPTY(chunk)
		}
		if err != nil {
			return
		}
	}
}

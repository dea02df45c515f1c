package ansiterm

// SlaveInputSink receives the output the child process writes to the pty's
// slave side: the background reader goroutine reads each chunk off the
// master fd and hands it to ReceiveBytesFromPTY, from that goroutine.
//
// A host typically implements this by forwarding each chunk (a channel send,
// for instance) to whichever goroutine owns the widget and calls AddBytes.
type SlaveInputSink interface {
	ReceiveBytesFromPTY(data []byte)
}

// NoopSlaveInputSink discards every chunk of pty output handed to it. Useful
// in tests that never need to observe what the child writes.
type NoopSlaveInputSink struct{}

func (NoopSlaveInputSink) ReceiveBytesFromPTY(data []byte) {}

var _ SlaveInputSink = NoopSlaveInputSink{}

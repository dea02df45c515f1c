package ptyio

import (
	"os"
	"testing"
	"time"
)

type collectingSink struct {
	ch chan []byte
}

func (s collectingSink) ReceiveBytesFromPTY(data []byte) {
	s.ch <- data
}

func TestReadLoopDeliversBytesToSink(t *testing.T) {
	p, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	sink := collectingSink{ch: make(chan []byte, 4)}
	go ReadLoop(p, sink)

	slave, err := os.OpenFile(p.SlaveName(), os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open slave: %v", err)
	}
	defer slave.Close()

	if _, err := slave.WriteString("ping"); err != nil {
		t.Fatalf("write to slave: %v", err)
	}

	select {
	case got := <-sink.ch:
		if string(got) != "ping" {
			t.Errorf("want %q, got %q", "ping", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ReadLoop to deliver bytes")
	}
}

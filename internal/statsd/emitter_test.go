package statsd

import (
	"bytes"
	"net"
	"testing"
	"time"
)

func TestNewEmitterAddr(t *testing.T) {
	e := NewEmitter("stats.example.com")
	if e.addr != "stats.example.com:8125" {
		t.Errorf("addr = %q, want stats.example.com:8125", e.addr)
	}
}

func TestEmitSendsOneDatagram(t *testing.T) {
	ln, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("ListenPacket() error: %v", err)
	}
	defer ln.Close()

	e := &Emitter{addr: ln.LocalAddr().String()}
	payload := []byte("myapp.host1.uptime:3600|g\n")
	if err := e.Emit(payload); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	ln.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 1500)
	n, _, err := ln.ReadFrom(buf)
	if err != nil {
		t.Fatalf("ReadFrom() error: %v", err)
	}
	if !bytes.Equal(buf[:n], payload) {
		t.Errorf("received %q, want %q", buf[:n], payload)
	}
}

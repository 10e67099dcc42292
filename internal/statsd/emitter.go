package statsd

import (
	"fmt"
	"net"
	"strconv"
)

// Port is the fixed statsd collector port.
const Port = 8125

// Emitter sends encoded payloads to a statsd collector over UDP.
type Emitter struct {
	addr string
}

func NewEmitter(destination string) *Emitter {
	return &Emitter{addr: net.JoinHostPort(destination, strconv.Itoa(Port))}
}

// Emit sends payload as a single datagram from a fresh socket bound to
// an ephemeral port. Delivery is best effort; no acknowledgment is
// awaited and nothing is buffered for retry.
func (e *Emitter) Emit(payload []byte) error {
	conn, err := net.Dial("udp", e.addr)
	if err != nil {
		return fmt.Errorf("error dialing %s: %w", e.addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("error sending metrics to %s: %w", e.addr, err)
	}
	return nil
}

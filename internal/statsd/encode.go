package statsd

import (
	"bytes"
	"fmt"
)

// Gauges is one cycle's worth of metric values, named and ordered the
// way they go out on the wire.
type Gauges struct {
	Namespace string
	Hostname  string
	NetRx     uint64
	NetTx     uint64
	Uptime    int64
	AvailMem  int64
	DiskFree  int64
	Load      int64
}

// Encode renders the gauges in the statsd plaintext format, one
// newline-terminated `name:value|g` line per metric.
// https://github.com/statsd/statsd/blob/master/docs/metric_types.md
// Everything we report is a gauge: the deltas are computed here, not by
// the collector, so each sample overwrites the last.
func (g Gauges) Encode() []byte {
	prefix := g.Namespace + "." + g.Hostname
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s.net-rx:%d|g\n", prefix, g.NetRx)
	fmt.Fprintf(&b, "%s.net-tx:%d|g\n", prefix, g.NetTx)
	fmt.Fprintf(&b, "%s.uptime:%d|g\n", prefix, g.Uptime)
	fmt.Fprintf(&b, "%s.availmem:%d|g\n", prefix, g.AvailMem)
	fmt.Fprintf(&b, "%s.diskfree:%d|g\n", prefix, g.DiskFree)
	fmt.Fprintf(&b, "%s.load:%d|g\n", prefix, g.Load)
	return b.Bytes()
}

package metrics

import (
	"fmt"
	"math"

	"github.com/labstack/gommon/log"

	"github.com/jeffypooo/uptimed/internal/statsd"
)

// SourceError reports a failed read of a required OS metric source.
// These are environment faults with no recovery path; callers are
// expected to terminate.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("unable to read %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Snapshot holds the sampler configuration, the last-seen network
// counter baselines, and the most recently computed metric values.
// It is mutated in place on every sampling tick and never shared
// across goroutines.
type Snapshot struct {
	Namespace string
	Hostname  string

	iface      string
	filesystem string

	lastRx uint64
	lastTx uint64

	RxDelta     uint64
	TxDelta     uint64
	Uptime      int64
	AvailMemPct int64
	ScaledLoad  int64
	DiskFreePct int64
}

// NewSnapshot resolves the hostname once and seeds the network counter
// baselines, so the first sample reports deltas over a real window
// rather than bytes-since-boot.
func NewSnapshot(src Source, namespace, iface, filesystem string) (*Snapshot, error) {
	hostname, err := src.Hostname()
	if err != nil {
		return nil, &SourceError{Source: "hostname", Err: err}
	}
	rx, tx, err := src.NetCounters(iface)
	if err != nil {
		return nil, &SourceError{Source: "network counters", Err: err}
	}
	return &Snapshot{
		Namespace:  namespace,
		Hostname:   hostname,
		iface:      iface,
		filesystem: filesystem,
		lastRx:     rx,
		lastTx:     tx,
	}, nil
}

// Sample reads current values from src and recomputes every metric.
// Baselines advance immediately after each delta, so consecutive deltas
// cover disjoint windows. A failed filesystem read is the one
// recoverable fault: diskfree is reported as 0 and sampling continues.
func (s *Snapshot) Sample(src Source) error {
	rx, tx, err := src.NetCounters(s.iface)
	if err != nil {
		return &SourceError{Source: "network counters", Err: err}
	}
	s.RxDelta = counterDelta(s.lastRx, rx)
	s.TxDelta = counterDelta(s.lastTx, tx)
	s.lastRx = rx
	s.lastTx = tx

	uptime, err := src.Uptime()
	if err != nil {
		return &SourceError{Source: "uptime", Err: err}
	}
	s.Uptime = int64(math.Round(uptime))

	total, avail, err := src.Memory()
	if err != nil {
		return &SourceError{Source: "memory info", Err: err}
	}
	s.AvailMemPct = roundPct(avail, total)

	loadAvg, err := src.LoadAvg()
	if err != nil {
		return &SourceError{Source: "load average", Err: err}
	}
	cores, err := src.CoreCount()
	if err != nil {
		return &SourceError{Source: "core count", Err: err}
	}
	if cores <= 0 {
		return &SourceError{Source: "core count", Err: fmt.Errorf("no cores reported")}
	}
	s.ScaledLoad = int64(math.Round(loadAvg * 100 / float64(cores)))

	free, fsTotal, err := src.FilesystemUsage(s.filesystem)
	if err != nil {
		log.Warnf("cannot read filesystem stats for %s, reporting 0: %v", s.filesystem, err)
		s.DiskFreePct = 0
	} else {
		s.DiskFreePct = roundPct(free, fsTotal)
	}

	return nil
}

// Gauges returns the current metric values for encoding.
func (s *Snapshot) Gauges() statsd.Gauges {
	return statsd.Gauges{
		Namespace: s.Namespace,
		Hostname:  s.Hostname,
		NetRx:     s.RxDelta,
		NetTx:     s.TxDelta,
		Uptime:    s.Uptime,
		AvailMem:  s.AvailMemPct,
		DiskFree:  s.DiskFreePct,
		Load:      s.ScaledLoad,
	}
}

// counterDelta treats a decreasing counter as an interface reset and
// reports 0 for the window the reset fell in.
func counterDelta(prev, curr uint64) uint64 {
	if curr < prev {
		return 0
	}
	return curr - prev
}

func roundPct(part, whole uint64) int64 {
	if whole == 0 {
		return 0
	}
	return int64(math.Round(float64(part) / float64(whole) * 100))
}

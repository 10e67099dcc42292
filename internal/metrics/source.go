package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// Source reads the raw OS counters and gauges that samples are derived
// from. Every read is synchronous and fails independently.
type Source interface {
	Hostname() (string, error)
	// NetCounters returns the cumulative received/transmitted byte
	// counters for the named interface.
	NetCounters(iface string) (rx, tx uint64, err error)
	// Uptime returns seconds since boot.
	Uptime() (float64, error)
	// Memory returns total and available memory in bytes.
	Memory() (total, available uint64, err error)
	// LoadAvg returns the 1-minute load average.
	LoadAvg() (float64, error)
	CoreCount() (int, error)
	// FilesystemUsage returns free and total capacity in bytes for the
	// filesystem containing path.
	FilesystemUsage(path string) (free, total uint64, err error)
}

// SystemSource reads from the local host.
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) Hostname() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("error getting host info: %w", err)
	}
	return info.Hostname, nil
}

func (s *SystemSource) NetCounters(iface string) (uint64, uint64, error) {
	stats, err := net.IOCounters(true) // true = per interface
	if err != nil {
		return 0, 0, fmt.Errorf("error getting network counters: %w", err)
	}
	for _, stat := range stats {
		if stat.Name == iface {
			return stat.BytesRecv, stat.BytesSent, nil
		}
	}
	return 0, 0, fmt.Errorf("interface %q not found", iface)
}

func (s *SystemSource) Uptime() (float64, error) {
	up, err := host.Uptime()
	if err != nil {
		return 0, fmt.Errorf("error getting uptime: %w", err)
	}
	return float64(up), nil
}

func (s *SystemSource) Memory() (uint64, uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, fmt.Errorf("error getting memory usage: %w", err)
	}
	return vm.Total, vm.Available, nil
}

func (s *SystemSource) LoadAvg() (float64, error) {
	avg, err := load.Avg()
	if err != nil {
		return 0, fmt.Errorf("error getting load average: %w", err)
	}
	return avg.Load1, nil
}

func (s *SystemSource) CoreCount() (int, error) {
	n, err := cpu.Counts(true) // true = logical cores
	if err != nil {
		return 0, fmt.Errorf("error getting core count: %w", err)
	}
	return n, nil
}

func (s *SystemSource) FilesystemUsage(path string) (uint64, uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, 0, fmt.Errorf("error getting disk usage for %s: %w", path, err)
	}
	return usage.Free, usage.Total, nil
}

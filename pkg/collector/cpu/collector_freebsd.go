//go:build freebsd

package cpu

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/srodi/dwmstatus/pkg/types"
)

// Collector reads per-core tick counters from the kern.cp_times sysctl.
type Collector struct {
	cores int
}

// NewCollector detects the core count through hw.ncpu.
func NewCollector(ctx context.Context) (*Collector, error) {
	n, err := unix.SysctlUint32("hw.ncpu")
	if err != nil {
		return nil, fmt.Errorf("reading hw.ncpu: %w", err)
	}
	return &Collector{cores: int(n)}, nil
}

// Cores returns the number of cores reported at startup.
func (c *Collector) Cores() int {
	return c.cores
}

// Snapshot copies kern.cp_times into dst. The kernel already orders the
// states user, nice, system, interrupt, idle.
func (c *Collector) Snapshot(ctx context.Context, dst []int64) error {
	if len(dst) != c.cores*types.CPUStates {
		return fmt.Errorf("snapshot buffer holds %d counters, want %d", len(dst), c.cores*types.CPUStates)
	}
	raw, err := unix.SysctlRaw("kern.cp_times")
	if err != nil {
		return fmt.Errorf("reading kern.cp_times: %w", err)
	}
	return decodeCounters(raw, longSize, dst)
}

// Close is a no-op; sysctl reads hold no resources.
func (c *Collector) Close() error {
	return nil
}

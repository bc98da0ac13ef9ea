//go:build !freebsd

package cpu

import (
	"context"
	"fmt"

	gocpu "github.com/shirou/gopsutil/v4/cpu"

	"github.com/srodi/dwmstatus/pkg/types"
)

// timesWithContext allows tests to stub the per-core time source.
var timesWithContext = gocpu.TimesWithContext

// countsWithContext allows tests to stub the logical core count.
var countsWithContext = gocpu.CountsWithContext

// Collector reads per-core CPU times through gopsutil and converts them to ticks.
type Collector struct {
	cores int
}

// NewCollector detects the number of logical cores.
func NewCollector(ctx context.Context) (*Collector, error) {
	n, err := countsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("counting cpus: %w", err)
	}
	return &Collector{cores: n}, nil
}

// Cores returns the number of cores reported at startup.
func (c *Collector) Cores() int {
	return c.cores
}

// Snapshot fills dst with the current per-core counters.
func (c *Collector) Snapshot(ctx context.Context, dst []int64) error {
	if len(dst) != c.cores*types.CPUStates {
		return fmt.Errorf("snapshot buffer holds %d counters, want %d", len(dst), c.cores*types.CPUStates)
	}
	stats, err := timesWithContext(ctx, true)
	if err != nil {
		return fmt.Errorf("reading cpu times: %w", err)
	}
	if len(stats) < c.cores {
		return fmt.Errorf("%w: have %d cores, want %d", errShortSnapshot, len(stats), c.cores)
	}
	for core := 0; core < c.cores; core++ {
		s := stats[core]
		base := core * types.CPUStates
		fillTicks(dst[base:base+types.CPUStates], cpuTimes{
			User:    s.User,
			Nice:    s.Nice,
			System:  s.System,
			Irq:     s.Irq,
			SoftIrq: s.Softirq,
			Steal:   s.Steal,
			Idle:    s.Idle,
			Iowait:  s.Iowait,
		})
	}
	return nil
}

// Close is a no-op.
func (c *Collector) Close() error {
	return nil
}

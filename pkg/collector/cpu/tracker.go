package cpu

import (
	"context"
	"fmt"

	"github.com/srodi/dwmstatus/pkg/types"
)

// CounterSource fills a flat per-core counter snapshot laid out as
// core*types.CPUStates + state.
type CounterSource interface {
	Cores() int
	Snapshot(ctx context.Context, dst []int64) error
}

// Tracker keeps the last absolute counters for every core so each Update
// reports utilization over the time since the previous call.
type Tracker struct {
	src      CounterSource
	cores    int
	current  []int64
	previous []int64
	usage    []float64
}

// NewTracker sizes the snapshot buffers from the source's core count.
// The previous buffer starts zeroed, so the first Update reports usage since boot.
func NewTracker(src CounterSource) (*Tracker, error) {
	cores := src.Cores()
	if cores <= 0 {
		return nil, fmt.Errorf("invalid core count %d", cores)
	}
	n := cores * types.CPUStates
	return &Tracker{
		src:      src,
		cores:    cores,
		current:  make([]int64, n),
		previous: make([]int64, n),
		usage:    make([]float64, cores),
	}, nil
}

// Cores returns the number of tracked cores.
func (t *Tracker) Cores() int {
	return t.cores
}

// Update fetches fresh counters and returns per-core utilization in percent.
// When the fetch fails the buffers are left as they were and the previous
// result is returned together with the error.
func (t *Tracker) Update(ctx context.Context) ([]float64, error) {
	if err := t.src.Snapshot(ctx, t.current); err != nil {
		return t.Usage(), fmt.Errorf("reading cpu counters: %w", err)
	}

	for core := 0; core < t.cores; core++ {
		base := core * types.CPUStates
		t.usage[core] = coreUsage(t.current[base:base+types.CPUStates], t.previous[base:base+types.CPUStates])
	}
	return t.Usage(), nil
}

// Usage returns a copy of the most recent utilization samples.
func (t *Tracker) Usage() []float64 {
	out := make([]float64, len(t.usage))
	copy(out, t.usage)
	return out
}

// coreUsage computes busy percent from one core's counters and stores the
// absolute values into previous for the next round.
func coreUsage(current, previous []int64) float64 {
	var total, idle int64
	for state := range current {
		delta := current[state] - previous[state]
		previous[state] = current[state]
		total += delta
		if state == types.CPUStateIdle {
			idle = delta
		}
	}
	if total == 0 {
		total = 1
	}
	return float64(100 - 100*idle/total)
}

package types

import "time"

// CPU state slots, in the order the kernel reports them per core.
const (
	CPUStateUser = iota
	CPUStateNice
	CPUStateSystem
	CPUStateInterrupt
	CPUStateIdle

	// CPUStates is the number of counters kept per core. Idle is always the last slot.
	CPUStates
)

// DefaultInterval is how often the status line is refreshed.
const DefaultInterval = time.Second

// DefaultTemperature is reported until a thermal reading succeeds.
const DefaultTemperature = "0.0"

// MetricSnapshot is everything sampled during a single tick.
type MetricSnapshot struct {
	MemPercent    int
	DiskPercent   int
	Temperature   string
	VolumePercent int
	DateTime      string
	CPU           []float64
}

// MemStat holds the raw memory totals a percentage is derived from.
type MemStat struct {
	TotalBytes uint64
	FreeBytes  uint64
}

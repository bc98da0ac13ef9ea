//go:build !freebsd

package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/srodi/dwmstatus/pkg/types"
)

// virtualMemory allows tests to stub the gopsutil lookup.
var virtualMemory = mem.VirtualMemoryWithContext

// Collector reads memory totals through gopsutil.
type Collector struct{}

// NewCollector returns a gopsutil-backed memory reader.
func NewCollector() *Collector {
	return &Collector{}
}

// Read returns physical memory and the bytes on the free list.
func (c *Collector) Read(ctx context.Context) (types.MemStat, error) {
	vm, err := virtualMemory(ctx)
	if err != nil {
		return types.MemStat{}, fmt.Errorf("reading virtual memory: %w", err)
	}
	return types.MemStat{TotalBytes: vm.Total, FreeBytes: vm.Free}, nil
}

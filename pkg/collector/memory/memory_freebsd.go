//go:build freebsd

package memory

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/srodi/dwmstatus/pkg/types"
)

// Collector reads memory totals from sysctl.
type Collector struct{}

// NewCollector returns a sysctl-backed memory reader.
func NewCollector() *Collector {
	return &Collector{}
}

// Read returns physical memory and the bytes held by free pages.
func (c *Collector) Read(ctx context.Context) (types.MemStat, error) {
	physmem, err := unix.SysctlUint64("hw.physmem")
	if err != nil {
		return types.MemStat{}, fmt.Errorf("reading hw.physmem: %w", err)
	}
	pagesize, err := unix.SysctlUint32("hw.pagesize")
	if err != nil {
		return types.MemStat{}, fmt.Errorf("reading hw.pagesize: %w", err)
	}
	free, err := unix.SysctlUint32("vm.stats.vm.v_free_count")
	if err != nil {
		return types.MemStat{}, fmt.Errorf("reading vm.stats.vm.v_free_count: %w", err)
	}
	return types.MemStat{
		TotalBytes: physmem,
		FreeBytes:  uint64(pagesize) * uint64(free),
	}, nil
}

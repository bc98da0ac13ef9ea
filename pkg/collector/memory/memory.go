// Package memory reports physical memory usage.
package memory

import (
	"context"
	"errors"

	"github.com/srodi/dwmstatus/pkg/types"
)

var errNoMemory = errors.New("total memory is zero")

// UsedPercent returns the share of memory not on the free list, truncated to an int.
func UsedPercent(stat types.MemStat) (int, error) {
	if stat.TotalBytes == 0 {
		return 0, errNoMemory
	}
	total := float64(stat.TotalBytes)
	return int((total - float64(stat.FreeBytes)) / total * 100), nil
}

// Percent reads the current totals and converts them in one step.
func (c *Collector) Percent(ctx context.Context) (int, types.MemStat, error) {
	stat, err := c.Read(ctx)
	if err != nil {
		return 0, stat, err
	}
	p, err := UsedPercent(stat)
	return p, stat, err
}

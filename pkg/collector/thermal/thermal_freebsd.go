//go:build freebsd

package thermal

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// DefaultZone is the ACPI thermal zone sysctl read when none is configured.
const DefaultZone = "hw.acpi.thermal.tz0.temperature"

// Collector reads an ACPI thermal zone sysctl.
type Collector struct {
	zone string
}

// NewCollector reads zone, or DefaultZone when zone is empty.
func NewCollector(zone string) *Collector {
	if zone == "" {
		zone = DefaultZone
	}
	return &Collector{zone: zone}
}

// Raw returns the zone temperature in tenths of a Kelvin.
func (c *Collector) Raw(ctx context.Context) (int, error) {
	v, err := unix.SysctlUint32(c.zone)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", c.zone, err)
	}
	return int(int32(v)), nil
}

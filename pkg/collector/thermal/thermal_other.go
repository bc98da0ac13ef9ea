//go:build !freebsd

package thermal

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/sensors"
)

// DefaultZone selects the first sensor gopsutil reports.
const DefaultZone = ""

var errNoSensor = errors.New("no temperature sensor")

// temperatures allows tests to stub the sensor lookup.
var temperatures = sensors.TemperaturesWithContext

// Collector reads one hardware sensor through gopsutil.
type Collector struct {
	zone string
}

// NewCollector reads the sensor whose key equals zone, or the first sensor when zone is empty.
func NewCollector(zone string) *Collector {
	return &Collector{zone: zone}
}

// Raw returns the sensor temperature converted to tenths of a Kelvin.
func (c *Collector) Raw(ctx context.Context) (int, error) {
	stats, err := temperatures(ctx)
	if err != nil && len(stats) == 0 {
		return 0, fmt.Errorf("reading sensors: %w", err)
	}
	for _, s := range stats {
		if c.zone != "" && s.SensorKey != c.zone {
			continue
		}
		return int(math.Round(s.Temperature*10)) + kelvinOffset, nil
	}
	if c.zone == "" {
		return 0, errNoSensor
	}
	return 0, fmt.Errorf("%w named %q", errNoSensor, c.zone)
}

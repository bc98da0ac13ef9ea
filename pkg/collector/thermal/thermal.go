// Package thermal reads a thermal zone and formats it in degrees Celsius.
package thermal

import (
	"context"
	"fmt"
)

// kelvinOffset is 273.1 K in the tenths-of-Kelvin units ACPI reports.
const kelvinOffset = 2731

// Format renders a raw deci-Kelvin reading as "<degrees>.<tenths>".
// The tenths digit is always non-negative, matching the ACPI tools.
func Format(raw int) string {
	c := raw - kelvinOffset
	tenths := c % 10
	if tenths < 0 {
		tenths = -tenths
	}
	return fmt.Sprintf("%d.%d", c/10, tenths)
}

// Read returns the formatted temperature of the configured zone.
func (c *Collector) Read(ctx context.Context) (string, error) {
	raw, err := c.Raw(ctx)
	if err != nil {
		return "", err
	}
	return Format(raw), nil
}

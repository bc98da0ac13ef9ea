// Package color maps a percentage onto the coarse 16-level hue ramp used by the bars.
package color

import "fmt"

const rampFormat = "#%X0%X000"

// Levels is the intensity range of one ramp nibble.
const Levels = 15

// Nibbles returns the two ramp intensities for percent. a grows with the
// percent, b shrinks, and a+b is always Levels.
func Nibbles(percent int) (a, b int) {
	a = percent * Levels / 100
	return a, Levels - a
}

// PercentColor renders percent as "#X0X000". The non-inverted ramp puts the
// falling intensity first; invert swaps the two nibbles so the leading
// channel brightens as the percent rises.
func PercentColor(percent int, invert bool) string {
	a, b := Nibbles(percent)
	if invert {
		return fmt.Sprintf(rampFormat, a, b)
	}
	return fmt.Sprintf(rampFormat, b, a)
}

// Percent is the non-inverted ramp.
func Percent(percent int) string {
	return PercentColor(percent, false)
}

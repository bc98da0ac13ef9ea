// Package status samples the host once per tick and renders the dwm status line.
package status

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/srodi/dwmstatus/pkg/bar"
	"github.com/srodi/dwmstatus/pkg/color"
	"github.com/srodi/dwmstatus/pkg/types"
)

// Capacity is the largest status line the window manager accepts, including
// the terminator it is stored with. Lines of Capacity bytes or more overflow.
const Capacity = 1024

// Fixed palette and geometry.
const (
	TextColor   = "#EEEEEE"
	UsageColor  = "#006CAD"
	TrackColor  = "#444444"
	cpuBarW     = 2
	cpuBarH     = 13
	usageBarW   = 20
	usageBarH   = 9
	cpuBarGap   = 4
	dateTimeFmt = "[Mon Jan 02] [15:04]"
)

// OverflowError reports a line that did not fit and was truncated.
type OverflowError struct {
	Capacity int
	Length   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("buffer too small %d/%d", e.Capacity, e.Length)
}

// Formatter renders snapshots into status lines of at most Capacity-1 bytes.
type Formatter struct {
	Capacity int
}

// NewFormatter returns a formatter using the window manager's Capacity.
func NewFormatter() *Formatter {
	return &Formatter{Capacity: Capacity}
}

// FormatDateTime renders t as "[Dow Mon DD] [HH:MM]" with English names.
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeFmt)
}

// CPUBars renders one vertical bar per core, shaded by the inverted ramp and
// separated by a fixed gap.
func CPUBars(usage []float64) string {
	var b strings.Builder
	for i, u := range usage {
		if i > 0 {
			b.WriteString(bar.Forward(cpuBarGap))
		}
		p := int(u)
		b.WriteString(bar.VBar(p, cpuBarW, cpuBarH, color.PercentColor(p, true), TrackColor))
	}
	return b.String()
}

// UsageBar renders the memory and disk bars.
func UsageBar(percent int) string {
	return bar.HBar(percent, usageBarW, usageBarH, UsageColor, TrackColor)
}

// Format renders m. When the line does not fit it is truncated to
// Capacity-1 bytes and returned together with an *OverflowError.
func (f *Formatter) Format(m types.MetricSnapshot) (string, error) {
	fg := bar.Color(TextColor)

	var b strings.Builder
	fmt.Fprintf(&b, "%s [VOL %d%%] [CPU %s%s%s%s]", fg, m.VolumePercent, bar.Forward(1), CPUBars(m.CPU), bar.Forward(3), fg)
	fmt.Fprintf(&b, " [MEM %s%s%s%s %d%%]", bar.Forward(1), UsageBar(m.MemPercent), bar.Forward(usageBarW), fg, m.MemPercent)
	fmt.Fprintf(&b, " [DISK %s%s%s%s %d%%]", bar.Forward(1), UsageBar(m.DiskPercent), bar.Forward(usageBarW), fg, m.DiskPercent)
	fmt.Fprintf(&b, " [TEMP %sC %s] %s ", m.Temperature, fg, m.DateTime)

	line := b.String()
	capacity := f.Capacity
	if capacity <= 0 {
		capacity = Capacity
	}
	if len(line) < capacity {
		return line, nil
	}
	return truncate(line, capacity-1), &OverflowError{Capacity: capacity, Length: len(line)}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

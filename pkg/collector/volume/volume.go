// Package volume reads the playback level of an ALSA mixer control through amixer.
package volume

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const (
	// DefaultCard is the ALSA device opened when none is configured.
	DefaultCard = "default"
	// DefaultControl is the simple mixer control that is read.
	DefaultControl = "Master"
)

var (
	errNoControl = errors.New("mixer control not found")
	errNoLimits  = errors.New("no playback limits")
	errNoLevel   = errors.New("no playback level")
)

// runAmixer allows tests to stub the amixer invocation.
var runAmixer = func(ctx context.Context, card, control string) ([]byte, error) {
	return exec.CommandContext(ctx, "amixer", "-D", card, "sget", control).Output()
}

// Collector reads one mixer control.
type Collector struct {
	card    string
	control string
}

// NewCollector reads control on card, falling back to the defaults for empty values.
func NewCollector(card, control string) *Collector {
	if card == "" {
		card = DefaultCard
	}
	if control == "" {
		control = DefaultControl
	}
	return &Collector{card: card, control: control}
}

// Percent returns the playback level scaled into the control's range.
func (c *Collector) Percent(ctx context.Context) (int, error) {
	out, err := runAmixer(ctx, c.card, c.control)
	if err != nil {
		return 0, fmt.Errorf("running amixer: %w", err)
	}
	return ParseLevel(out, c.control)
}

// Levels is one control's playback range and first-channel level.
type Levels struct {
	Min, Max, Level int64
}

// Percent maps Level into 0-100 over the Min..Max range, truncating.
func (l Levels) Percent() (int, error) {
	if l.Max <= l.Min {
		return 0, fmt.Errorf("empty playback range %d-%d", l.Min, l.Max)
	}
	return int(float64(l.Level-l.Min) / float64(l.Max-l.Min) * 100), nil
}

// ParseLevel extracts the playback range and the first channel's level
// from `amixer sget` output and converts them to a percentage.
func ParseLevel(out []byte, control string) (int, error) {
	lv, err := parseLevels(out, control)
	if err != nil {
		return 0, err
	}
	return lv.Percent()
}

func parseLevels(out []byte, control string) (Levels, error) {
	var lv Levels
	var found, haveLimits, haveLevel bool

	header := fmt.Sprintf("Simple mixer control '%s'", control)
	scanner := bufio.NewScanner(bytes.NewReader(out))
scan:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "Simple mixer control "):
			if found {
				// Only the first matching control is read.
				break scan
			}
			found = strings.HasPrefix(line, header)
		case !found:
		case strings.HasPrefix(line, "Limits:"):
			lo, hi, err := parseLimits(line)
			if err != nil {
				return lv, err
			}
			lv.Min, lv.Max, haveLimits = lo, hi, true
		case !haveLevel && strings.Contains(line, ": Playback "):
			v, err := parsePlayback(line)
			if err != nil {
				return lv, err
			}
			lv.Level, haveLevel = v, true
		}
	}
	if err := scanner.Err(); err != nil {
		return lv, fmt.Errorf("scanning amixer output: %w", err)
	}

	switch {
	case !found:
		return lv, fmt.Errorf("%w: %q", errNoControl, control)
	case !haveLimits:
		return lv, errNoLimits
	case !haveLevel:
		return lv, errNoLevel
	}
	return lv, nil
}

// parseLimits reads "Limits: Playback 0 - 87".
func parseLimits(line string) (int64, int64, error) {
	fields := strings.Fields(line)
	for i := 0; i+3 < len(fields); i++ {
		if fields[i] != "Playback" || fields[i+2] != "-" {
			continue
		}
		lo, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing limits %q: %w", line, err)
		}
		hi, err := strconv.ParseInt(fields[i+3], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing limits %q: %w", line, err)
		}
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("%w in %q", errNoLimits, line)
}

// parsePlayback reads "Mono: Playback 60 [69%] [-20.25dB] [on]".
func parsePlayback(line string) (int64, error) {
	_, after, _ := strings.Cut(line, ": Playback ")
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w in %q", errNoLevel, line)
	}
	v, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing level %q: %w", line, err)
	}
	return v, nil
}

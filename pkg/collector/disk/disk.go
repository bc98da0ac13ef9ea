// Package disk reports filesystem usage by parsing df output.
package disk

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

// DefaultTarget matches the root mount when no filesystem is configured.
const DefaultTarget = "/"

var (
	errNoMatch    = errors.New("no matching df line")
	errAmbiguous  = errors.New("more than one matching df line")
	errNoCapacity = errors.New("no capacity field")
)

// runDF allows tests to stub the df invocation.
var runDF = func(ctx context.Context) ([]byte, error) {
	return exec.CommandContext(ctx, "df", "-hl").Output()
}

// Collector reports the capacity column of one df row.
type Collector struct {
	target string
}

// NewCollector watches target, matched against either the filesystem or the mount point column.
func NewCollector(target string) *Collector {
	if target == "" {
		target = DefaultTarget
	}
	return &Collector{target: target}
}

// Target returns the filesystem or mount point being watched.
func (c *Collector) Target() string {
	return c.target
}

// Percent runs df and returns the used percentage. Any failure reports 0.
func (c *Collector) Percent(ctx context.Context) (int, error) {
	out, err := runDF(ctx)
	if err != nil {
		return 0, fmt.Errorf("running df: %w", err)
	}
	return ParseCapacity(out, c.target)
}

// ParseCapacity finds exactly one row of df output whose filesystem or mount
// point equals target and returns its capacity without the trailing '%'.
func ParseCapacity(out []byte, target string) (int, error) {
	var match []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if fields[0] != target && fields[len(fields)-1] != target {
			continue
		}
		if match != nil {
			return 0, fmt.Errorf("%w for %q", errAmbiguous, target)
		}
		match = fields
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("scanning df output: %w", err)
	}
	if match == nil {
		return 0, fmt.Errorf("%w for %q", errNoMatch, target)
	}

	for _, f := range match[1:] {
		if !strings.HasSuffix(f, "%") {
			continue
		}
		p, err := strconv.Atoi(strings.TrimSuffix(f, "%"))
		if err != nil {
			return 0, fmt.Errorf("parsing capacity %q: %w", f, err)
		}
		return p, nil
	}
	return 0, fmt.Errorf("%w in %q", errNoCapacity, strings.Join(match, " "))
}

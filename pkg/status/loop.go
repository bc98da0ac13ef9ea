package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/srodi/dwmstatus/pkg/types"
)

// Publisher hands a finished line to the window manager and returns once it has been flushed.
type Publisher interface {
	Publish(ctx context.Context, line string) error
}

// Loop drives sample, format and publish once per interval.
type Loop struct {
	sampler   *Sampler
	formatter *Formatter
	publisher Publisher
	interval  time.Duration
	logger    *slog.Logger
}

// NewLoop wires a loop. A non-positive interval falls back to types.DefaultInterval.
func NewLoop(sampler *Sampler, formatter *Formatter, publisher Publisher, interval time.Duration, logger *slog.Logger) *Loop {
	if interval <= 0 {
		interval = types.DefaultInterval
	}
	if formatter == nil {
		formatter = NewFormatter()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		sampler:   sampler,
		formatter: formatter,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

// Tick runs one full sample, format and publish pass. An overflowing line is
// still published; only a publish failure is returned.
func (l *Loop) Tick(ctx context.Context) error {
	start := time.Now()
	snap := l.sampler.Sample(ctx)

	line, err := l.formatter.Format(snap)
	var overflow *OverflowError
	if errors.As(err, &overflow) {
		l.logger.Warn("status line truncated", "capacity", overflow.Capacity, "length", overflow.Length)
	}

	if err := l.publisher.Publish(ctx, line); err != nil {
		return fmt.Errorf("publishing status: %w", err)
	}

	l.logger.Debug("tick",
		"cpu", snap.CPU,
		"mem", snap.MemPercent,
		"disk", snap.DiskPercent,
		"temp", snap.Temperature,
		"vol", snap.VolumePercent,
		"bytes", len(line),
		"took", time.Since(start),
	)
	return nil
}

// Run ticks immediately and then waits one interval after each completed
// tick until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("status loop stopped")
			return nil
		case <-timer.C:
			// A tick cut short by shutdown is not a failure.
			if err := l.Tick(ctx); err != nil && ctx.Err() == nil {
				l.logger.Error("tick failed", "error", err)
			}
			timer.Reset(l.interval)
		}
	}
}

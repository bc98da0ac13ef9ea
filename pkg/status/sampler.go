package status

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/srodi/dwmstatus/pkg/types"
)

// CPUTracker reports per-core utilization since its previous call.
type CPUTracker interface {
	Update(ctx context.Context) ([]float64, error)
}

// MemoryReader reports used memory and the totals it was derived from.
type MemoryReader interface {
	Percent(ctx context.Context) (int, types.MemStat, error)
}

// PercentReader reports a single percentage such as disk or volume.
type PercentReader interface {
	Percent(ctx context.Context) (int, error)
}

// TemperatureReader reports a formatted temperature.
type TemperatureReader interface {
	Read(ctx context.Context) (string, error)
}

// Sources groups the metric providers sampled every tick.
type Sources struct {
	CPU     CPUTracker
	Memory  MemoryReader
	Disk    PercentReader
	Thermal TemperatureReader
	Volume  PercentReader
	// Now defaults to time.Now.
	Now func() time.Time
}

// Sampler reads every source once per call. A failed read keeps the value
// from the last successful one, except disk which drops to 0.
type Sampler struct {
	src     Sources
	logger  *slog.Logger
	last    types.MetricSnapshot
	failing map[string]bool
}

// NewSampler creates a Sampler. If logger is nil, a no-op logger is used.
func NewSampler(src Sources, logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if src.Now == nil {
		src.Now = time.Now
	}
	return &Sampler{
		src:     src,
		logger:  logger,
		last:    types.MetricSnapshot{Temperature: types.DefaultTemperature},
		failing: make(map[string]bool),
	}
}

// Last returns the most recent snapshot.
func (s *Sampler) Last() types.MetricSnapshot {
	out := s.last
	out.CPU = append([]float64(nil), s.last.CPU...)
	return out
}

// Sample refreshes every metric and returns the resulting snapshot.
func (s *Sampler) Sample(ctx context.Context) types.MetricSnapshot {
	if s.src.Memory != nil {
		p, stat, err := s.src.Memory.Percent(ctx)
		if s.observe("memory", err) {
			s.last.MemPercent = p
			if stat.FreeBytes <= stat.TotalBytes {
				s.logger.Debug("memory sampled",
					"used", humanize.IBytes(stat.TotalBytes-stat.FreeBytes),
					"total", humanize.IBytes(stat.TotalBytes),
				)
			}
		}
	}

	if s.src.Disk != nil {
		p, err := s.src.Disk.Percent(ctx)
		if !s.observe("disk", err) {
			p = 0
		}
		s.last.DiskPercent = p
	}

	if s.src.Thermal != nil {
		temp, err := s.src.Thermal.Read(ctx)
		if s.observe("temperature", err) {
			s.last.Temperature = temp
		}
	}

	s.last.DateTime = FormatDateTime(s.src.Now())

	if s.src.Volume != nil {
		p, err := s.src.Volume.Percent(ctx)
		if s.observe("volume", err) {
			s.last.VolumePercent = p
		}
	}

	if s.src.CPU != nil {
		usage, err := s.src.CPU.Update(ctx)
		s.observe("cpu", err)
		s.last.CPU = usage
	}

	return s.Last()
}

// observe logs a failing metric once at warn level and again when it recovers.
// It reports whether the read succeeded.
func (s *Sampler) observe(metric string, err error) bool {
	if err != nil {
		if s.failing[metric] {
			s.logger.Debug("metric still unavailable", "metric", metric, "error", err)
		} else {
			s.logger.Warn("metric unavailable", "metric", metric, "error", err)
			s.failing[metric] = true
		}
		return false
	}
	if s.failing[metric] {
		s.logger.Info("metric recovered", "metric", metric)
		delete(s.failing, metric)
	}
	return true
}

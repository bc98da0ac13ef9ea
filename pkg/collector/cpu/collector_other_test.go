//go:build !freebsd

package cpu

import (
	"context"
	"errors"
	"testing"

	gocpu "github.com/shirou/gopsutil/v4/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srodi/dwmstatus/pkg/types"
)

func stubCPU(t *testing.T, cores int, times []gocpu.TimesStat, err error) {
	t.Helper()
	t.Cleanup(func() {
		timesWithContext = gocpu.TimesWithContext
		countsWithContext = gocpu.CountsWithContext
	})
	countsWithContext = func(context.Context, bool) (int, error) { return cores, nil }
	timesWithContext = func(context.Context, bool) ([]gocpu.TimesStat, error) { return times, err }
}

func TestCollectorSnapshotConvertsToTicks(t *testing.T) {
	stubCPU(t, 2, []gocpu.TimesStat{
		{CPU: "cpu0", User: 1, Nice: 0.5, System: 2, Irq: 0.1, Softirq: 0.2, Steal: 0.7, Idle: 10, Iowait: 3, Guest: 0.4},
		{CPU: "cpu1", User: 4, Idle: 6},
	}, nil)

	c, err := NewCollector(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, c.Cores())

	dst := make([]int64, 2*types.CPUStates)
	require.NoError(t, c.Snapshot(context.Background(), dst))
	assert.Equal(t, []int64{100, 50, 200, 100, 1300, 400, 0, 0, 0, 600}, dst)
	assert.NoError(t, c.Close())
}

func TestCollectorSnapshotErrorsLeaveBufferAlone(t *testing.T) {
	stubCPU(t, 2, []gocpu.TimesStat{{User: 1}}, nil)
	c, err := NewCollector(context.Background())
	require.NoError(t, err)

	dst := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	want := append([]int64(nil), dst...)
	require.ErrorIs(t, c.Snapshot(context.Background(), dst), errShortSnapshot)
	assert.Equal(t, want, dst)

	require.Error(t, c.Snapshot(context.Background(), dst[:3]))

	timesWithContext = func(context.Context, bool) ([]gocpu.TimesStat, error) { return nil, errors.New("boom") }
	require.Error(t, c.Snapshot(context.Background(), dst))
	assert.Equal(t, want, dst)
}

func TestCollectorFeedsTracker(t *testing.T) {
	stubCPU(t, 1, []gocpu.TimesStat{{User: 1, Idle: 3}}, nil)
	c, err := NewCollector(context.Background())
	require.NoError(t, err)

	tr, err := NewTracker(c)
	require.NoError(t, err)
	usage, err := tr.Update(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{25}, usage)
}

func TestCollectorCountsIowaitAsIdleAndStealAsBusy(t *testing.T) {
	stubCPU(t, 2, []gocpu.TimesStat{
		{CPU: "cpu0", User: 10, Idle: 50, Iowait: 40},
		{CPU: "cpu1", User: 10, Idle: 50, Steal: 40},
	}, nil)
	c, err := NewCollector(context.Background())
	require.NoError(t, err)

	tr, err := NewTracker(c)
	require.NoError(t, err)
	usage, err := tr.Update(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 50}, usage)
}

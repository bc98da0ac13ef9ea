package cpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/srodi/dwmstatus/pkg/types"
)

var errShortSnapshot = errors.New("snapshot shorter than buffer")

// ticksPerSecond converts second-based counters into kernel-style ticks.
const ticksPerSecond = 100

// longSize is the width of a C long in kern.cp_times on the running platform.
const longSize = strconv.IntSize / 8

// decodeCounters unpacks a native-endian array of C longs into dst.
func decodeCounters(raw []byte, wordSize int, dst []int64) error {
	if wordSize != 4 && wordSize != 8 {
		return fmt.Errorf("unsupported word size %d", wordSize)
	}
	if len(raw)%wordSize != 0 {
		return fmt.Errorf("raw length %d is not a multiple of %d", len(raw), wordSize)
	}
	if len(raw)/wordSize < len(dst) {
		return fmt.Errorf("%w: have %d values, want %d", errShortSnapshot, len(raw)/wordSize, len(dst))
	}
	for i := range dst {
		off := i * wordSize
		if wordSize == 8 {
			dst[i] = int64(binary.NativeEndian.Uint64(raw[off:]))
		} else {
			dst[i] = int64(int32(binary.NativeEndian.Uint32(raw[off:])))
		}
	}
	return nil
}

// cpuTimes is one core's counters in seconds. Guest time is not listed:
// the kernel already counts it inside User and Nice.
type cpuTimes struct {
	User, Nice, System, Irq, SoftIrq, Steal, Idle, Iowait float64
}

// fillTicks writes one core's times into the state slots at dst[0:types.CPUStates].
// I/O wait counts as idle, as it does in kern.cp_times. Stolen time is busy
// time the core could not use and lands in the interrupt slot with irq and softirq.
func fillTicks(dst []int64, t cpuTimes) {
	dst[types.CPUStateUser] = toTicks(t.User)
	dst[types.CPUStateNice] = toTicks(t.Nice)
	dst[types.CPUStateSystem] = toTicks(t.System)
	dst[types.CPUStateInterrupt] = toTicks(t.Irq + t.SoftIrq + t.Steal)
	dst[types.CPUStateIdle] = toTicks(t.Idle + t.Iowait)
}

func toTicks(seconds float64) int64 {
	return int64(math.Round(seconds * ticksPerSecond))
}

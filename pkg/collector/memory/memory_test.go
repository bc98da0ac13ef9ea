package memory

import (
	"errors"
	"testing"

	"github.com/srodi/dwmstatus/pkg/types"
)

func TestUsedPercent(t *testing.T) {
	cases := []struct {
		name string
		stat types.MemStat
		want int
	}{
		{"quarterFree", types.MemStat{TotalBytes: 16 << 30, FreeBytes: 4 << 30}, 75},
		{"allFree", types.MemStat{TotalBytes: 1024, FreeBytes: 1024}, 0},
		{"noneFree", types.MemStat{TotalBytes: 1024, FreeBytes: 0}, 100},
		// 2/3 used truncates rather than rounds.
		{"truncates", types.MemStat{TotalBytes: 3, FreeBytes: 1}, 66},
	}
	for _, tc := range cases {
		got, err := UsedPercent(tc.stat)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestUsedPercentZeroTotal(t *testing.T) {
	if _, err := UsedPercent(types.MemStat{}); !errors.Is(err, errNoMemory) {
		t.Fatalf("expected errNoMemory, got %v", err)
	}
}

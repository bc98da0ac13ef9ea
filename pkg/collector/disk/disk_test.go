package disk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const freebsdDF = `Filesystem            Size    Used   Avail Capacity  Mounted on
tank/ROOT/initial     400G     95G    305G    24%    /
devfs                 1.0K    1.0K      0B   100%    /dev
tank/home             305G     12G    293G     4%    /home
tank                  293G     96K    293G     0%    /tank
`

const linuxDF = `Filesystem      Size  Used Avail Use% Mounted on
tmpfs           1.6G  2.3M  1.6G   1% /run
/dev/nvme0n1p2  468G  301G  144G  68% /
tmpfs           7.7G   45M  7.7G   1% /dev/shm
`

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		target string
		want   int
	}{
		{"byFilesystem", freebsdDF, "tank/ROOT/initial", 24},
		{"byMountPoint", freebsdDF, "/home", 4},
		{"rootMount", linuxDF, "/", 68},
		{"devicePath", linuxDF, "/dev/nvme0n1p2", 68},
		{"full", freebsdDF, "devfs", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCapacity([]byte(tt.out), tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCapacityFailures(t *testing.T) {
	_, err := ParseCapacity([]byte(freebsdDF), "zroot/ROOT/default")
	assert.ErrorIs(t, err, errNoMatch)

	_, err = ParseCapacity([]byte(linuxDF), "tmpfs")
	assert.ErrorIs(t, err, errAmbiguous)

	_, err = ParseCapacity([]byte("fs 1G 1G 0B full /mnt\n"), "/mnt")
	assert.ErrorIs(t, err, errNoCapacity)

	_, err = ParseCapacity([]byte("fs 1G 1G 0B x% /mnt\n"), "/mnt")
	assert.Error(t, err)

	_, err = ParseCapacity(nil, "/")
	assert.ErrorIs(t, err, errNoMatch)
}

func TestCollectorPercent(t *testing.T) {
	t.Cleanup(func() { runDF = defaultRunDF })

	runDF = func(context.Context) ([]byte, error) { return []byte(freebsdDF), nil }
	c := NewCollector("tank/ROOT/initial")
	p, err := c.Percent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 24, p)

	runDF = func(context.Context) ([]byte, error) { return []byte(freebsdDF), nil }
	p, err = NewCollector("missing").Percent(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, p)

	runDF = func(context.Context) ([]byte, error) { return nil, errors.New("df: not found") }
	p, err = c.Percent(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, p)
}

func TestNewCollectorDefaultsToRoot(t *testing.T) {
	assert.Equal(t, DefaultTarget, NewCollector("").Target())
}

var defaultRunDF = runDF

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() { configPath = "" })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestVersionFull(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "status line for dwm")
	assert.Contains(t, out, "dwmstatus dev\n")
	assert.Contains(t, out, "commit: none\n")
	assert.NotContains(t, out, "\033[")
}

func TestConfigCommandMergesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("publisher: stdout\nvolume:\n  control: PCM\n"), 0o644))

	out, err := execute(t, "config", "--config", path, "--interval", "3s", "--disk-target", "/home")
	require.NoError(t, err)
	assert.Contains(t, out, "interval: 3s\n")
	assert.Contains(t, out, "publisher: stdout\n")
	assert.Contains(t, out, "target: /home\n")
	assert.Contains(t, out, "control: PCM\n")
}

func TestConfigCommandReportsMissingFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "nope.yaml")
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestFormatVersion(t *testing.T) {
	assert.Equal(t, "dev", formatVersion("dev"))
	assert.Equal(t, "", formatVersion(""))
	assert.Equal(t, "v1.2.0", formatVersion("1.2.0"))
	assert.Equal(t, "v1.2.0", formatVersion("v1.2.0"))
}

// Package config loads dwmstatus settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/srodi/dwmstatus/pkg/collector/disk"
	"github.com/srodi/dwmstatus/pkg/collector/thermal"
	"github.com/srodi/dwmstatus/pkg/collector/volume"
	"github.com/srodi/dwmstatus/pkg/types"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. DWMSTATUS_DISK_TARGET.
	EnvPrefix = "DWMSTATUS"
	// AppDir is the directory under the user config dir holding FileName.
	AppDir   = "dwmstatus"
	FileName = "config.yaml"
)

// Config is the effective runtime configuration.
type Config struct {
	Interval  time.Duration `mapstructure:"interval" yaml:"interval"`
	Publisher string        `mapstructure:"publisher" yaml:"publisher"`
	Display   string        `mapstructure:"display" yaml:"display"`
	Plain     bool          `mapstructure:"plain" yaml:"plain"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level"`
	Disk      DiskConfig    `mapstructure:"disk" yaml:"disk"`
	Volume    VolumeConfig  `mapstructure:"volume" yaml:"volume"`
	Thermal   ThermalConfig `mapstructure:"thermal" yaml:"thermal"`
}

// DiskConfig selects the filesystem reported as DISK.
type DiskConfig struct {
	Target string `mapstructure:"target" yaml:"target"`
}

// VolumeConfig selects the ALSA card and mixer control reported as VOL.
type VolumeConfig struct {
	Card    string `mapstructure:"card" yaml:"card"`
	Control string `mapstructure:"control" yaml:"control"`
}

// ThermalConfig names the temperature source: a sysctl OID on FreeBSD, a
// sensor key elsewhere. Empty picks the first sensor reported.
type ThermalConfig struct {
	Zone string `mapstructure:"zone" yaml:"zone"`
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	"interval":       "interval",
	"publisher":      "publisher",
	"display":        "display",
	"plain":          "plain",
	"log_level":      "log-level",
	"disk.target":    "disk-target",
	"volume.card":    "volume-card",
	"volume.control": "volume-control",
	"thermal.zone":   "thermal-zone",
}

var userConfigDir = os.UserConfigDir

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", types.DefaultInterval)
	v.SetDefault("publisher", "auto")
	v.SetDefault("display", "")
	v.SetDefault("plain", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("disk.target", disk.DefaultTarget)
	v.SetDefault("volume.card", volume.DefaultCard)
	v.SetDefault("volume.control", volume.DefaultControl)
	v.SetDefault("thermal.zone", thermal.DefaultZone)
}

// DefaultPath returns $XDG_CONFIG_HOME/dwmstatus/config.yaml, or "" when no
// user config dir can be determined.
func DefaultPath() string {
	dir, err := userConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, AppDir, FileName)
}

// Load builds a Config. An explicit path must exist; the default path is
// optional. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readFile(v, path); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() error {
	if c.Interval <= 0 {
		c.Interval = types.DefaultInterval
	}
	c.Publisher = strings.ToLower(strings.TrimSpace(c.Publisher))
	if c.Publisher == "" {
		c.Publisher = "auto"
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Disk.Target == "" {
		c.Disk.Target = disk.DefaultTarget
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel)
	}
}

// Dump writes cfg as YAML.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

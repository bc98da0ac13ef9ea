package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/srodi/dwmstatus/pkg/collector/cpu"
	"github.com/srodi/dwmstatus/pkg/collector/disk"
	"github.com/srodi/dwmstatus/pkg/collector/memory"
	"github.com/srodi/dwmstatus/pkg/collector/thermal"
	"github.com/srodi/dwmstatus/pkg/collector/volume"
	"github.com/srodi/dwmstatus/pkg/config"
	"github.com/srodi/dwmstatus/pkg/publish"
	"github.com/srodi/dwmstatus/pkg/status"
	"github.com/srodi/dwmstatus/pkg/types"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dwmstatus",
		Short: "Status line generator for dwm",
		Long: `Sample per-core CPU, memory, disk, temperature and volume once per
interval and publish them as a dwm status line with inline bars.

The line is written to the X root window name, or to stdout when no
display is available (useful with 'xsetroot -name' wrappers and for
previewing).

Examples:
  dwmstatus
  dwmstatus --publisher stdout --plain
  dwmstatus --interval 2s --disk-target /home`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/dwmstatus/config.yaml)")
	pf.Duration("interval", types.DefaultInterval, "refresh interval (e.g. 1s, 500ms)")
	pf.String("publisher", string(publish.ModeAuto), "where to publish: auto, x11 or stdout")
	pf.String("display", "", "X display to connect to (default $DISPLAY)")
	pf.Bool("plain", false, "strip bar markup when publishing to stdout")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("disk-target", disk.DefaultTarget, "mount point reported as DISK")
	pf.String("volume-card", volume.DefaultCard, "ALSA card passed to amixer -D")
	pf.String("volume-control", volume.DefaultControl, "mixer control reported as VOL")
	pf.String("thermal-zone", thermal.DefaultZone, "temperature source (sysctl OID or sensor key)")

	root.AddCommand(newConfigCmd(), newVersionCmd())
	return root
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level, _ := cfg.Level()
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runStatus(cmd *cobra.Command) (err error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cpuCollector, err := cpu.NewCollector(ctx)
	if err != nil {
		return fmt.Errorf("initializing CPU collector: %w", err)
	}
	tracker, err := cpu.NewTracker(cpuCollector)
	if err != nil {
		return errors.Join(fmt.Errorf("initializing CPU tracker: %w", err), cpuCollector.Close())
	}

	pub, err := publish.New(publish.Options{
		Mode:    publish.Mode(cfg.Publisher),
		Display: cfg.Display,
		Plain:   cfg.Plain,
		Out:     cmd.OutOrStdout(),
	})
	if err != nil {
		return errors.Join(fmt.Errorf("initializing publisher: %w", err), cpuCollector.Close())
	}
	defer func() {
		err = errors.Join(err, pub.Close(), cpuCollector.Close())
	}()

	sampler := status.NewSampler(status.Sources{
		CPU:     tracker,
		Memory:  memory.NewCollector(),
		Disk:    disk.NewCollector(cfg.Disk.Target),
		Thermal: thermal.NewCollector(cfg.Thermal.Zone),
		Volume:  volume.NewCollector(cfg.Volume.Card, cfg.Volume.Control),
	}, logger)

	logger.Info("dwmstatus started",
		"version", version,
		"cores", tracker.Cores(),
		"publisher", cfg.Publisher,
		"interval", cfg.Interval,
	)
	return status.NewLoop(sampler, status.NewFormatter(), pub, cfg.Interval, logger).Run(ctx)
}

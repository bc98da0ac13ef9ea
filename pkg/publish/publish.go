// Package publish delivers finished status lines to the window manager.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Mode selects where status lines go.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeX11    Mode = "x11"
	ModeStdout Mode = "stdout"
)

// Publisher hands a status line to its host and returns once it is flushed.
type Publisher interface {
	Publish(ctx context.Context, line string) error
	Close() error
}

// Options configures New.
type Options struct {
	Mode Mode
	// Display overrides $DISPLAY for the X11 publisher.
	Display string
	// Plain strips bar markup before writing to stdout.
	Plain bool
	// Out defaults to os.Stdout.
	Out io.Writer
}

var getenv = os.Getenv

// New builds the publisher named by opts.Mode. Auto picks X11 when a display
// is configured or $DISPLAY is set, stdout otherwise.
func New(opts Options) (Publisher, error) {
	mode, err := resolveMode(opts)
	if err != nil {
		return nil, err
	}
	switch mode {
	case ModeX11:
		return NewX11(opts.Display)
	default:
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return NewStdout(out, opts.Plain), nil
	}
}

func resolveMode(opts Options) (Mode, error) {
	switch Mode(strings.ToLower(string(opts.Mode))) {
	case ModeX11:
		return ModeX11, nil
	case ModeStdout:
		return ModeStdout, nil
	case ModeAuto, "":
		if opts.Display != "" || getenv("DISPLAY") != "" {
			return ModeX11, nil
		}
		return ModeStdout, nil
	default:
		return "", fmt.Errorf("unknown publisher %q (want auto, x11 or stdout)", opts.Mode)
	}
}

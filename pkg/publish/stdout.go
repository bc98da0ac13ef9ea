package publish

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/srodi/dwmstatus/pkg/bar"
)

// Stdout writes status lines to a stream, one per tick. On a terminal the
// previous line is overwritten in place.
type Stdout struct {
	w      io.Writer
	plain  bool
	redraw bool
	dirty  bool
}

var isTerminal = term.IsTerminal

// NewStdout wraps w. Redraw mode is enabled only when w is a terminal.
func NewStdout(w io.Writer, plain bool) *Stdout {
	s := &Stdout{w: w, plain: plain}
	if f, ok := w.(*os.File); ok && isTerminal(int(f.Fd())) {
		s.redraw = true
	}
	return s
}

// Publish writes line, stripped of markup in plain mode.
func (s *Stdout) Publish(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.plain {
		line = bar.Strip(line)
	}

	var err error
	if s.redraw {
		// carriage return + erase line
		_, err = fmt.Fprintf(s.w, "\r\033[K%s", line)
		s.dirty = true
	} else {
		_, err = fmt.Fprintln(s.w, line)
	}
	if err != nil {
		return fmt.Errorf("writing status line: %w", err)
	}
	return nil
}

// Close terminates a redrawn line so the shell prompt starts clean.
func (s *Stdout) Close() error {
	if s.redraw && s.dirty {
		_, err := fmt.Fprintln(s.w)
		return err
	}
	return nil
}

package publish

import (
	"context"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11 sets the root window name, which dwm renders as its status text.
type X11 struct {
	conn *xgb.Conn
	root xproto.Window
}

// NewX11 connects to display, or $DISPLAY when display is empty.
func NewX11(display string) (*X11, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("opening X display %q: %w", display, err)
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	if screen == nil {
		conn.Close()
		return nil, fmt.Errorf("X display %q has no default screen", display)
	}
	return &X11{conn: conn, root: screen.Root}, nil
}

// Publish replaces WM_NAME on the root window. The checked request waits for
// the server's reply, so the name is flushed before Publish returns.
func (x *X11) Publish(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data := []byte(line)
	cookie := xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, x.root,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(data)), data)
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("setting root window name: %w", err)
	}
	return nil
}

// Close drops the X connection.
func (x *X11) Close() error {
	x.conn.Close()
	return nil
}

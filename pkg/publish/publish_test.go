package publish

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srodi/dwmstatus/pkg/status"
	"github.com/srodi/dwmstatus/pkg/types"
)

const markup = "^c#EEEEEE^ [VOL 40%] [MEM ^f1^^c#444444^^r0,3,20,9^^f20^ 75%]"

func stubEnv(t *testing.T, display string) {
	t.Helper()
	orig := getenv
	getenv = func(key string) string {
		if key == "DISPLAY" {
			return display
		}
		return ""
	}
	t.Cleanup(func() { getenv = orig })
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		env     string
		want    Mode
		wantErr bool
	}{
		{name: "auto without display", opts: Options{Mode: ModeAuto}, want: ModeStdout},
		{name: "empty mode without display", opts: Options{}, want: ModeStdout},
		{name: "auto with env display", opts: Options{Mode: ModeAuto}, env: ":0", want: ModeX11},
		{name: "auto with configured display", opts: Options{Mode: ModeAuto, Display: ":1"}, want: ModeX11},
		{name: "explicit stdout ignores display", opts: Options{Mode: ModeStdout}, env: ":0", want: ModeStdout},
		{name: "case insensitive", opts: Options{Mode: "X11"}, want: ModeX11},
		{name: "unknown", opts: Options{Mode: "wayland"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubEnv(t, tt.env)
			got, err := resolveMode(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewStdoutWhenNoDisplay(t *testing.T) {
	stubEnv(t, "")
	var buf bytes.Buffer
	p, err := New(Options{Mode: ModeAuto, Out: &buf})
	require.NoError(t, err)
	assert.IsType(t, &Stdout{}, p)

	require.NoError(t, p.Publish(context.Background(), "hello"))
	require.NoError(t, p.Close())
	assert.Equal(t, "hello\n", buf.String())
}

func TestStdoutWritesMarkupVerbatim(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf, false)
	require.NoError(t, s.Publish(context.Background(), markup))
	require.NoError(t, s.Publish(context.Background(), markup))
	assert.Equal(t, markup+"\n"+markup+"\n", buf.String())
}

func TestStdoutPlainStripsMarkup(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf, true)
	require.NoError(t, s.Publish(context.Background(), markup))
	assert.Equal(t, " [VOL 40%] [MEM  75%]\n", buf.String())
}

func TestStdoutPlainStripsTruncatedLine(t *testing.T) {
	line, err := status.NewFormatter().Format(types.MetricSnapshot{
		Temperature: types.DefaultTemperature,
		CPU:         make([]float64, 64),
	})
	var overflow *status.OverflowError
	require.ErrorAs(t, err, &overflow)

	var buf bytes.Buffer
	require.NoError(t, NewStdout(&buf, true).Publish(context.Background(), line))
	assert.Equal(t, " [VOL 0%] [CPU \n", buf.String())
}

func TestStdoutRedrawsOnTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return true }
	t.Cleanup(func() { isTerminal = orig })

	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	defer f.Close()

	s := NewStdout(f, true)
	require.True(t, s.redraw)
	require.NoError(t, s.Publish(context.Background(), "one"))
	require.NoError(t, s.Publish(context.Background(), "two"))
	require.NoError(t, s.Close())

	got, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "\r\033[Kone\r\033[Ktwo\n", string(got))
}

func TestStdoutHonoursCancelledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewStdout(&buf, false).Publish(ctx, "line")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestNewUnknownMode(t *testing.T) {
	_, err := New(Options{Mode: "fifo"})
	assert.ErrorContains(t, err, `unknown publisher "fifo"`)
}

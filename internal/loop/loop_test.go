package loop

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/tomz197/invasion/internal/game"
	"github.com/tomz197/invasion/internal/settings"
)

// syncBuffer is a bytes.Buffer safe for the loop and the test to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fixedSize(cols, rows int) func() (int, int, error) {
	return func() (int, int, error) { return cols, rows, nil }
}

func runLoop(t *testing.T, ctx context.Context, in io.Reader) (*game.Controller, string) {
	t.Helper()
	c := game.New(game.Options{Settings: settings.Default(), Sleep: func(time.Duration) {}})
	out := &syncBuffer{}

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{
			Controller: c,
			Input:      in,
			Output:     out,
			TermSize:   fixedSize(120, 40),
			Profile:    termenv.TrueColor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Expected the loop to stop")
	}
	return c, out.String()
}

func TestRunStopsOnQuitKey(t *testing.T) {
	c, out := runLoop(t, context.Background(), strings.NewReader("q"))

	if c.Running() {
		t.Error("Expected controller to be stopped")
	}
	if !strings.Contains(out, "\033[?1049h") || !strings.Contains(out, "\033[?1049l") {
		t.Error("Expected alternate screen to be entered and left")
	}
	if !strings.HasSuffix(out, "\033[?1049l") {
		t.Errorf("Expected the main screen restored last, got tail %q", out[max(0, len(out)-40):])
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	c, out := runLoop(t, ctx, pr)
	if c.Running() {
		t.Error("Expected controller to be stopped after cancel")
	}
	if !strings.Contains(out, "Play") {
		t.Error("Expected the menu to be drawn before cancelling")
	}
}

func TestMouseModeTogglesOnce(t *testing.T) {
	var out bytes.Buffer
	m := newMouseMode(&out)

	m.set(true)
	m.set(true)
	m.set(false)

	want := "\033[?1000h\033[?1006h" + "\033[?1006l\033[?1000l"
	if out.String() != want {
		t.Errorf("Expected one enable and one disable, got %q", out.String())
	}
}

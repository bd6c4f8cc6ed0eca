package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Jurkyy/spinny-cube/internal/engine"
	"github.com/Jurkyy/spinny-cube/internal/viz"
)

func TestLiveRendererFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, viz.ThemePlain)

	c := viz.NewCanvas(4, 2, ' ')
	c.Plot(0, 0, 'x', 1) // column 0 is replaced by the line break
	c.Plot(1, 0, 'a', 1)
	c.Plot(3, 1, 'b', 1)

	if err := r.Frame(c); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	want := "\033[H" + "\na  " + "\n  b" + "\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLiveRendererBeginEnd(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, viz.ThemePlain)

	if err := r.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\033[2J") {
		t.Errorf("expected clear screen first, got %q", buf.String())
	}

	buf.Reset()
	if err := r.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if buf.String() != "\033[?25h" {
		t.Errorf("expected cursor restore, got %q", buf.String())
	}
}

func TestLiveRendererStats(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, viz.ThemePlain)

	s := engine.FrameStats{Frames: 2, Total: 120 * time.Millisecond}
	if err := r.Stats(s); err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	want := "Frame Number: 2\n" +
		"Total Time Spent Calculating: 120ms\n" +
		"Average Frame Time: 60ms\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestLiveRendererSingleColumn(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, viz.ThemePlain)

	if err := r.Frame(viz.NewCanvas(1, 3, ' ')); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if want := "\033[H\n\n\n\n"; buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

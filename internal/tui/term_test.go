package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Jurkyy/spinny-cube/internal/engine"
	"github.com/Jurkyy/spinny-cube/internal/viz"
)

func TestEnableANSIOnFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	restore, err := EnableANSI(f)
	if err != nil {
		t.Skipf("console mode not available: %v", err)
	}
	if err := restore(); err != nil {
		t.Errorf("restore failed: %v", err)
	}
}

func TestFitsNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if ok, _, _ := Fits(f, 10000, 10000); !ok {
		t.Error("expected a regular file to always fit")
	}
}

func TestFitsSize(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		want       bool
	}{
		{"exact", 160, 60, true},
		{"one row short", 160, 59, false},
		{"one column short", 159, 60, false},
		{"larger", 200, 80, true},
	}
	for _, tt := range tests {
		if got := fitsSize(tt.cols, tt.rows, 160, 55); got != tt.want {
			t.Errorf("%s: fitsSize(%d, %d) = %v, expected %v", tt.name, tt.cols, tt.rows, got, tt.want)
		}
	}
}

// The cursor must stay on screen after a frame and its stats are written.
func TestStatsLinesMatchesOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, viz.ThemePlain)
	c := viz.NewCanvas(8, 6, ' ')

	if err := r.Frame(c); err != nil {
		t.Fatal(err)
	}
	if err := r.Stats(engine.FrameStats{Frames: 1, Total: time.Millisecond}); err != nil {
		t.Fatal(err)
	}

	// lines used = line breaks + the line the cursor ends on
	used := strings.Count(buf.String(), "\n") + 1
	if used != c.Height+statsLines {
		t.Errorf("output uses %d lines, statsLines allows %d", used, c.Height+statsLines)
	}
}

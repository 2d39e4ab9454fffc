package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/editor"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
	logLines       = 5
	logFontSize    = 10
)

// Overlay draws editor stats in the top-right corner. Hidden by default.
type Overlay struct {
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns an overlay.
func New() *Overlay {
	return &Overlay{}
}

// Draw renders the overlay when show is set. recent, if non-empty, is drawn
// bottom-left as the last few log lines. Text is only recomputed every
// updateInterval frames.
func (d *Overlay) Draw(show bool, st editor.Stats, recent []string) {
	if !show {
		d.lines = nil
		return
	}
	d.frameCount++
	if d.lines == nil || d.frameCount%updateInterval == 0 {
		runtime.ReadMemStats(&d.memStats)
		d.lines = []string{
			fmt.Sprintf("FPS: %d", rl.GetFPS()),
			fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)),
			fmt.Sprintf("Objects: %d", st.Objects),
			fmt.Sprintf("Selected: %d", st.Selected),
			fmt.Sprintf("Gesture: %s", st.State),
		}
		if !st.Valid {
			d.lines = append(d.lines, "Rect select: unavailable")
		}
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if len(recent) > logLines {
		recent = recent[len(recent)-logLines:]
	}
	y = int32(rl.GetScreenHeight()) - padding - int32(len(recent))*(logFontSize+2)
	for _, line := range recent {
		rl.DrawText(line, padding, y, logFontSize, rl.LightGray)
		y += logFontSize + 2
	}
}

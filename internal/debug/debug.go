package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 10
	lineHeight = fontSize + 4
	// updateInterval: refresh the overlay text every N frames to reduce allocations.
	updateInterval = 15
)

// StatusFunc returns the scene readout drawn under the FPS counter.
type StatusFunc func() string

// Debug draws the FPS counter and a scene readout in the top-right corner. Hidden by default.
type Debug struct {
	ShowFPS    bool
	status     StatusFunc
	frameCount uint32
	fpsText    string
	statusText string
}

// New returns a hidden overlay. status may be nil.
func New(status StatusFunc) *Debug {
	return &Debug{status: status}
}

// SetShowFPS sets whether the overlay is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
	if !show {
		d.fpsText, d.statusText = "", ""
	}
}

// Draw renders the overlay. Call after the scene and console in the draw loop.
func (d *Debug) Draw() {
	if !d.ShowFPS {
		return
	}
	d.frameCount++
	if d.frameCount%updateInterval == 0 || d.fpsText == "" {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		if d.status != nil {
			d.statusText = d.status()
		}
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range []string{d.fpsText, d.statusText} {
		if text == "" {
			continue
		}
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}

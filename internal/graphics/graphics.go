package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrWindow is returned when the window or its GL context could not be created.
var ErrWindow = errors.New("graphics: window initialization failed")

// Options configure the window and frame pacing.
type Options struct {
	Width, Height int
	Title         string
	TargetFPS     int
	Clear         rl.Color
}

// Run opens the window and drives the frame loop until the user closes it. Each frame it calls
// update (input, simulation), then clears the screen and calls draw. release, when set, runs
// before the window closes so GPU resources can be freed while the context still exists.
// ESC is left to the console; the window closes through its close button.
func Run(opts Options, update, draw, release func()) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return ErrWindow
	}
	defer rl.CloseWindow()
	if release != nil {
		defer release()
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.TargetFPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(opts.Clear)
		draw()
		rl.EndDrawing()
	}
	return nil
}

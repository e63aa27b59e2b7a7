package controls

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rain-scene/internal/input"
)

// Binding ties one raylib key to a scene action.
type Binding struct {
	Key    int32
	Action input.Action
}

// DefaultBindings: O/C door, W/S zoom, A/D rotate, Q/E tilt, arrows move the sphere.
var DefaultBindings = []Binding{
	{rl.KeyO, input.DoorOpen},
	{rl.KeyC, input.DoorClose},
	{rl.KeyW, input.ZoomIn},
	{rl.KeyS, input.ZoomOut},
	{rl.KeyA, input.RotateLeft},
	{rl.KeyD, input.RotateRight},
	{rl.KeyQ, input.TiltUp},
	{rl.KeyE, input.TiltDown},
	{rl.KeyLeft, input.MoveLeft},
	{rl.KeyRight, input.MoveRight},
	{rl.KeyUp, input.MoveUp},
	{rl.KeyDown, input.MoveDown},
}

// Keyboard turns key presses and OS key repeats into actions, one per event.
type Keyboard struct {
	bindings []Binding
	buf      []input.Action
}

// New returns a Keyboard using bindings (DefaultBindings when nil).
func New(bindings []Binding) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{bindings: bindings}
}

// Poll returns this frame's actions in binding order. The returned slice is reused by the
// next call. Call once per frame, after the window is open.
func (k *Keyboard) Poll() []input.Action {
	k.buf = k.buf[:0]
	for _, b := range k.bindings {
		if rl.IsKeyPressed(b.Key) || rl.IsKeyPressedRepeat(b.Key) {
			k.buf = append(k.buf, b.Action)
		}
	}
	return k.buf
}

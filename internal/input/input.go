package input

import "rain-scene/internal/physics"

// Action is a discrete key action delivered by the platform layer. Held keys repeat the action.
type Action int

const (
	None Action = iota
	DoorOpen
	DoorClose
	ZoomIn
	ZoomOut
	RotateLeft
	RotateRight
	TiltUp
	TiltDown
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

var actionNames = map[Action]string{
	None:        "None",
	DoorOpen:    "DoorOpen",
	DoorClose:   "DoorClose",
	ZoomIn:      "ZoomIn",
	ZoomOut:     "ZoomOut",
	RotateLeft:  "RotateLeft",
	RotateRight: "RotateRight",
	TiltUp:      "TiltUp",
	TiltDown:    "TiltDown",
	MoveLeft:    "MoveLeft",
	MoveRight:   "MoveRight",
	MoveUp:      "MoveUp",
	MoveDown:    "MoveDown",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "Unknown"
}

// Kind selects which part of the scene an Intent changes.
type Kind int

const (
	KindNone Kind = iota
	KindDoor
	KindZoom
	KindRotate
	KindTilt
	KindMove
)

// Intent is a small command value applied synchronously to the scene state.
// Only the fields relevant to Kind are set.
type Intent struct {
	Kind  Kind
	Open  bool              // KindDoor
	Steps float32           // KindZoom, KindRotate, KindTilt: signed step count
	Move  physics.Direction // KindMove
	Label string            // what the user pressed, for the log
}

// Translate maps an action to the intent it stands for. Zoom-in and tilt-up are +1 steps,
// rotate-left is +1 yaw step. Unknown actions map to a KindNone intent.
func Translate(a Action) Intent {
	switch a {
	case DoorOpen:
		return Intent{Kind: KindDoor, Open: true, Label: "O key pressed: Door set to OPEN"}
	case DoorClose:
		return Intent{Kind: KindDoor, Open: false, Label: "C key pressed: Door set to CLOSED"}
	case ZoomIn:
		return Intent{Kind: KindZoom, Steps: 1, Label: "W key pressed: Zoom in"}
	case ZoomOut:
		return Intent{Kind: KindZoom, Steps: -1, Label: "S key pressed: Zoom out"}
	case RotateLeft:
		return Intent{Kind: KindRotate, Steps: 1, Label: "A key pressed: Rotate left"}
	case RotateRight:
		return Intent{Kind: KindRotate, Steps: -1, Label: "D key pressed: Rotate right"}
	case TiltUp:
		return Intent{Kind: KindTilt, Steps: 1, Label: "Q key pressed: Tilt up"}
	case TiltDown:
		return Intent{Kind: KindTilt, Steps: -1, Label: "E key pressed: Tilt down"}
	case MoveLeft:
		return Intent{Kind: KindMove, Move: physics.Left, Label: "Left key pressed"}
	case MoveRight:
		return Intent{Kind: KindMove, Move: physics.Right, Label: "Right key pressed"}
	case MoveUp:
		return Intent{Kind: KindMove, Move: physics.Up, Label: "Up key pressed"}
	case MoveDown:
		return Intent{Kind: KindMove, Move: physics.Down, Label: "Down key pressed"}
	}
	return Intent{Kind: KindNone}
}

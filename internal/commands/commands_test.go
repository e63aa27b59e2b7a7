package commands

import (
	"errors"
	"testing"

	"rain-scene/internal/layout"
	"rain-scene/internal/world"
)

func TestParse(t *testing.T) {
	if args, ok := Parse("cmd door --open"); !ok || len(args) != 2 || args[0] != "door" {
		t.Fatalf("Parse = %v, %v", args, ok)
	}
	if args, ok := Parse("cmd   "); !ok || args != nil {
		t.Fatalf("empty cmd = %v, %v", args, ok)
	}
	if _, ok := Parse("hello"); ok {
		t.Fatalf("plain text must not parse as a command")
	}
}

func newScene(t *testing.T) (*Registry, *world.World, *[]string, *bool) {
	t.Helper()
	w := world.New(layout.Default(), 1, nil)
	r := NewRegistry()
	var said []string
	fps := false
	RegisterScene(r, w, Hooks{
		SetShowFPS: func(show bool) { fps = show },
		Save:       func() error { return errors.New("disk full") },
		Log:        func(line string) { said = append(said, line) },
	})
	return r, w, &said, &fps
}

func TestExecuteUnknownAndMissing(t *testing.T) {
	r, _, _, _ := newScene(t)
	if err := r.Execute(nil); err == nil {
		t.Fatalf("expected missing subcommand error")
	}
	if err := r.Execute([]string{"fly"}); err == nil {
		t.Fatalf("expected unknown command error")
	}
	if err := r.Execute([]string{"door", "--bogus"}); err == nil {
		t.Fatalf("expected flag parse error")
	}
	if got := r.Names(); len(got) != 6 || got[0] != "camera" || got[5] != "sphere" {
		t.Fatalf("names = %v", got)
	}
}

func TestDoorCommand(t *testing.T) {
	r, w, _, _ := newScene(t)
	if err := r.Execute([]string{"door", "--open"}); err != nil || !w.DoorOpen {
		t.Fatalf("open: %v, door=%v", err, w.DoorOpen)
	}
	if err := r.Execute([]string{"door", "--close"}); err != nil || w.DoorOpen {
		t.Fatalf("close: %v, door=%v", err, w.DoorOpen)
	}
	if err := r.Execute([]string{"door"}); err == nil {
		t.Fatalf("expected error without a flag")
	}
}

func TestCameraCommandClampsAndKeepsUnsetFields(t *testing.T) {
	r, w, said, _ := newScene(t)
	if err := r.Execute([]string{"camera", "--pitch", "120"}); err != nil {
		t.Fatal(err)
	}
	if w.Camera.Pitch != 80 || w.Camera.Distance != 15 || w.Camera.Yaw != 45 {
		t.Fatalf("camera = %v %v %v", w.Camera.Distance, w.Camera.Yaw, w.Camera.Pitch)
	}
	if err := r.Execute([]string{"camera", "--distance", "1", "--yaw", "-90"}); err != nil {
		t.Fatal(err)
	}
	if w.Camera.Distance != 2 || w.Camera.Yaw != -90 || w.Camera.Pitch != 80 {
		t.Fatalf("camera = %v %v %v", w.Camera.Distance, w.Camera.Yaw, w.Camera.Pitch)
	}
	if len(*said) != 2 {
		t.Fatalf("said = %v", *said)
	}
}

func TestSphereCommand(t *testing.T) {
	r, w, _, _ := newScene(t)
	if err := r.Execute([]string{"sphere", "--x", "3", "--z", "3"}); err == nil {
		t.Fatalf("teleport into the pond must fail")
	}
	if err := r.Execute([]string{"sphere", "--x", "-6", "--z", "4.5"}); err != nil {
		t.Fatal(err)
	}
	if p := w.Physics.Sphere.Position; p[0] != -6 || p[2] != 4.5 {
		t.Fatalf("sphere at %v", p)
	}
	if err := r.Execute([]string{"sphere", "--x", "oops", "--z", "1"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestResetFpsSave(t *testing.T) {
	r, w, _, fps := newScene(t)
	if err := r.Execute([]string{"reset", "31"}); err != nil || w.Seed() != 31 {
		t.Fatalf("reset: %v seed=%d", err, w.Seed())
	}
	if err := r.Execute([]string{"fps", "--show"}); err != nil || !*fps {
		t.Fatalf("fps show: %v %v", err, *fps)
	}
	if err := r.Execute([]string{"fps", "--hide"}); err != nil || *fps {
		t.Fatalf("fps hide: %v %v", err, *fps)
	}
	if err := r.Execute([]string{"fps"}); err == nil {
		t.Fatalf("fps without flag must fail")
	}
	if err := r.Execute([]string{"save"}); err == nil {
		t.Fatalf("save error must propagate")
	}
}

func TestSaveLayout(t *testing.T) {
	w := world.New(layout.Default(), 1, nil)
	r := NewRegistry()
	prefs, lay := 0, 0
	RegisterScene(r, w, Hooks{
		Save:       func() error { prefs++; return nil },
		SaveLayout: func() error { lay++; return nil },
	})
	if err := r.Execute([]string{"save"}); err != nil || prefs != 1 || lay != 0 {
		t.Fatalf("save: %v prefs=%d layout=%d", err, prefs, lay)
	}
	if err := r.Execute([]string{"save", "--layout"}); err != nil || prefs != 2 || lay != 1 {
		t.Fatalf("save --layout: %v prefs=%d layout=%d", err, prefs, lay)
	}
}

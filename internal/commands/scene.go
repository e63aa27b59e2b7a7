package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"rain-scene/internal/input"
	"rain-scene/internal/world"
)

// Hooks connect scene commands to parts of the app outside the simulation.
type Hooks struct {
	SetShowFPS func(show bool)
	Save       func() error
	SaveLayout func() error
	Log        func(line string)
}

// RegisterScene registers door, camera, sphere, reset, fps and save against w.
// "save --layout" also writes the current camera and sphere as the layout start.
// Commands run on the frame loop goroutine, between frames.
func RegisterScene(r *Registry, w *world.World, h Hooks) {
	say := func(format string, args ...any) {
		if h.Log != nil {
			h.Log(fmt.Sprintf(format, args...))
		}
	}

	r.Register("door", "door --open | --close", func(fs *flag.FlagSet) func([]string) error {
		open := fs.Bool("open", false, "open the door")
		shut := fs.Bool("close", false, "close the door")
		return func([]string) error {
			switch {
			case *open && *shut:
				return errors.New("door: pick one of --open or --close")
			case *open:
				w.Apply(input.Translate(input.DoorOpen))
			case *shut:
				w.Apply(input.Translate(input.DoorClose))
			default:
				return errors.New("door: need --open or --close")
			}
			return nil
		}
	})

	r.Register("camera", "camera [--distance D] [--yaw DEG] [--pitch DEG]", func(fs *flag.FlagSet) func([]string) error {
		c := w.Camera
		dist := fs.Float64("distance", float64(c.Distance), "orbit distance")
		yaw := fs.Float64("yaw", float64(c.Yaw), "yaw in degrees")
		pitch := fs.Float64("pitch", float64(c.Pitch), "pitch in degrees")
		return func([]string) error {
			c.Set(float32(*dist), float32(*yaw), float32(*pitch))
			say("Camera set to distance %g, yaw %g, pitch %g", c.Distance, c.Yaw, c.Pitch)
			return nil
		}
	})

	r.Register("sphere", "sphere --x X --z Z", func(fs *flag.FlagSet) func([]string) error {
		x := fs.Float64("x", 0, "target x")
		z := fs.Float64("z", 0, "target z")
		return func([]string) error {
			set := 0
			fs.Visit(func(*flag.Flag) { set++ })
			if set != 2 {
				return errors.New("sphere: need both --x and --z")
			}
			px, pz := float32(*x), float32(*z)
			if !w.Physics.Teleport(px, pz) {
				return fmt.Errorf("sphere: (%g, %g) is blocked", px, pz)
			}
			say("Sphere moved to (%g, %g)", px, pz)
			return nil
		}
	})

	r.Register("reset", "reset [SEED]", func(*flag.FlagSet) func([]string) error {
		return func(args []string) error {
			var seed int64
			if len(args) > 0 {
				n, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("reset: bad seed: %w", err)
				}
				seed = n
			}
			w.Reset(seed)
			say("Scene reset with seed %d", w.Seed())
			return nil
		}
	})

	r.Register("fps", "fps --show | --hide", func(fs *flag.FlagSet) func([]string) error {
		show := fs.Bool("show", false, "show the FPS overlay")
		hide := fs.Bool("hide", false, "hide the FPS overlay")
		return func([]string) error {
			if *show == *hide {
				return errors.New("fps: need exactly one of --show or --hide")
			}
			if h.SetShowFPS != nil {
				h.SetShowFPS(*show)
			}
			return nil
		}
	})

	r.Register("save", "save [--layout]", func(fs *flag.FlagSet) func([]string) error {
		withLayout := fs.Bool("layout", false, "also save the scene layout")
		return func([]string) error {
			if h.Save == nil {
				return errors.New("save: not available")
			}
			if err := h.Save(); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			say("Preferences saved")
			if !*withLayout {
				return nil
			}
			if h.SaveLayout == nil {
				return errors.New("save: layout saving not available")
			}
			if err := h.SaveLayout(); err != nil {
				return fmt.Errorf("save layout: %w", err)
			}
			say("Layout saved")
			return nil
		}
	})
}

package main

import (
	"fmt"
	"io"
	"os"

	"rain-scene/internal/ambience"
	"rain-scene/internal/camera"
	"rain-scene/internal/commands"
	"rain-scene/internal/console"
	"rain-scene/internal/controls"
	"rain-scene/internal/debug"
	"rain-scene/internal/engineconfig"
	"rain-scene/internal/env"
	"rain-scene/internal/graphics"
	"rain-scene/internal/input"
	"rain-scene/internal/layout"
	"rain-scene/internal/logger"
	"rain-scene/internal/scene"
	"rain-scene/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rain-scene:", err)
		os.Exit(1)
	}
}

func run() error {
	// Config problems are reported once the logger exists; none of them are fatal.
	var warnings []error
	if _, err := env.Load(".env"); err != nil {
		warnings = append(warnings, err)
	}
	prefs, err := engineconfig.Load()
	if err != nil {
		warnings = append(warnings, err)
	}
	if err := engineconfig.ApplyEnv(&prefs); err != nil {
		warnings = append(warnings, err)
	}
	lay, err := layout.Load(layout.LayoutPath)
	if err != nil {
		warnings = append(warnings, err)
	}

	var echo io.Writer
	if prefs.LogEcho {
		echo = os.Stdout
	}
	log := logger.New(prefs.LogPath, echo)
	for _, warn := range warnings {
		log.Log(warn.Error())
	}

	w := world.New(lay, prefs.Seed, log)
	log.Logf("Scene seed %d, logging to %s", w.Seed(), log.Path())

	overlay := debug.New(w.Status)
	overlay.SetShowFPS(prefs.ShowFPS)

	reg := commands.NewRegistry()
	commands.RegisterScene(reg, w, commands.Hooks{
		SetShowFPS: overlay.SetShowFPS,
		Save: func() error {
			prefs.ShowFPS = overlay.ShowFPS
			prefs.Seed = w.Seed()
			return engineconfig.Save(prefs)
		},
		SaveLayout: func() error {
			return layout.Save(layout.LayoutPath, w.Snapshot())
		},
		Log: log.Log,
	})
	cons := console.New(log, reg)
	keys := controls.New(nil)

	proj := camera.Perspective{FovY: prefs.FovY, Aspect: prefs.Aspect(), Near: prefs.Near, Far: prefs.Far}
	scn := scene.New(proj, w)

	if prefs.Audio {
		player := ambience.NewPlayer()
		if err := player.Start(prefs.AudioVolume, w.Seed()); err != nil {
			log.Log(err.Error())
		} else {
			defer player.Close()
		}
	}

	update := func() {
		cons.Update()
		if !cons.IsOpen() {
			for _, a := range keys.Poll() {
				w.Apply(input.Translate(a))
			}
		}
		w.Advance()
	}
	draw := func() {
		scn.Draw(w)
		cons.Draw()
		overlay.Draw()
	}

	return graphics.Run(graphics.Options{
		Width:     prefs.WindowWidth,
		Height:    prefs.WindowHeight,
		Title:     prefs.WindowTitle,
		TargetFPS: prefs.TargetFPS,
		Clear:     scene.ClearColor,
	}, update, draw, scn.Unload)
}

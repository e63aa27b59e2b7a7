package ambience

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player loops the rain hiss on the system speaker. The speaker runs its own goroutine;
// Player never touches simulation state.
type Player struct {
	mu          sync.Mutex
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	initialized bool
}

// NewPlayer returns an idle player.
func NewPlayer() *Player {
	return &Player{}
}

// Start opens the speaker and begins playback at volume in [0, 1]. Calling Start on a
// running player only changes the volume.
func (p *Player) Start(volume float64, seed int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		setVolume(p.volume, volume)
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.volume = &effects.Volume{Streamer: NewRainNoise(sampleRate, seed), Base: 2}
	setVolume(p.volume, volume)
	p.ctrl = &beep.Ctrl{Streamer: p.volume}
	speaker.Play(p.ctrl)
	p.initialized = true
	return nil
}

// Close stops playback and clears the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

// setVolume maps a linear volume in [0, 1] onto beep's log2 scale; 0 is silent.
func setVolume(v *effects.Volume, volume float64) {
	speaker.Lock()
	defer speaker.Unlock()
	if volume <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(volume)
}

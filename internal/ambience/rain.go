package ambience

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// RainNoise is an endless stereo rain hiss: white noise through a one-pole low-pass filter,
// with sparse louder clicks standing in for individual drops.
type RainNoise struct {
	rng      *rand.Rand
	alpha    float64 // low-pass coefficient
	state    [2]float64
	dropRate float64 // probability of a drop click per sample
	click    [2]float64
}

// NewRainNoise returns a rain streamer for sample rate sr. seed makes the stream reproducible.
func NewRainNoise(sr beep.SampleRate, seed int64) *RainNoise {
	const cutoff = 2500.0
	dt := 1 / float64(sr)
	rc := 1 / (2 * math.Pi * cutoff)
	return &RainNoise{
		rng:      rand.New(rand.NewSource(seed)),
		alpha:    dt / (rc + dt),
		dropRate: 40 / float64(sr),
	}
}

// Stream fills samples with rain and never runs dry.
func (r *RainNoise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		for ch := 0; ch < 2; ch++ {
			white := r.rng.Float64()*2 - 1
			r.state[ch] += r.alpha * (white - r.state[ch])
			if r.rng.Float64() < r.dropRate {
				r.click[ch] = 0.6 * (r.rng.Float64()*2 - 1)
			}
			samples[i][ch] = clamp(0.5*r.state[ch] + r.click[ch])
			r.click[ch] *= 0.9
		}
	}
	return len(samples), true
}

// Err is always nil; generated noise cannot fail.
func (r *RainNoise) Err() error {
	return nil
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

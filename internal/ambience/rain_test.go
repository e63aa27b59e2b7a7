package ambience

import (
	"math"
	"testing"
)

func TestRainNoiseStaysInRangeAndNeverEnds(t *testing.T) {
	r := NewRainNoise(44100, 1)
	buf := make([][2]float64, 4096)
	var energy float64
	for round := 0; round < 10; round++ {
		n, ok := r.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("round %d: stream returned %d, %v", round, n, ok)
		}
		for _, s := range buf {
			for ch := 0; ch < 2; ch++ {
				if s[ch] < -1 || s[ch] > 1 || math.IsNaN(s[ch]) {
					t.Fatalf("sample out of range: %v", s[ch])
				}
				energy += s[ch] * s[ch]
			}
		}
	}
	if energy == 0 {
		t.Fatalf("rain noise is silent")
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error")
	}
}

func TestRainNoiseSeeded(t *testing.T) {
	a, b := NewRainNoise(44100, 5), NewRainNoise(44100, 5)
	ba, bb := make([][2]float64, 256), make([][2]float64, 256)
	a.Stream(ba)
	b.Stream(bb)
	for i := range ba {
		if ba[i] != bb[i] {
			t.Fatalf("sample %d differs for equal seeds", i)
		}
	}
}

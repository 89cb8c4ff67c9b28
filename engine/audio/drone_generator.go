package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// DroneGenerator streams an endless ambient pad: a few detuned sines under a
// slow swell. It never ends, so it needs no looping wrapper.
type DroneGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
}

// drone partials, Hz, a low open fifth with slight detune for beating
var droneFreqs = [...]float64{55, 55.4, 82.4, 110.2}

// NewDroneGenerator creates a drone at the given sample rate and amplitude.
func NewDroneGenerator(sr beep.SampleRate, volume float64) *DroneGenerator {
	return &DroneGenerator{sr: sr, volume: volume}
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(g.sr)
	for i := range samples {
		t := float64(g.pos) / rate

		var s float64
		for _, f := range droneFreqs {
			s += math.Sin(2 * math.Pi * f * t)
		}
		s /= float64(len(droneFreqs))

		// 8 second swell between 0.5 and 1
		swell := 0.75 + 0.25*math.Sin(2*math.Pi*t/8)
		v := g.volume * swell * s

		// slight stereo offset on the right channel
		r := g.volume * swell * math.Sin(2*math.Pi*droneFreqs[0]*t+0.3)
		samples[i][0] = v
		samples[i][1] = 0.8*v + 0.2*r
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error {
	return nil
}

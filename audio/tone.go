// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Tone is a sine wave of fixed peak amplitude. Odd channels are shifted by π, so channel 1
// carries the inverse of channel 0; this is not a panning model.
type Tone struct {
	Amplitude float64
	Frequency float64
}

func NewTone(p Parameters) Tone {
	return Tone{
		Amplitude: float64(p.Amplitude()),
		Frequency: float64(p.Frequency()),
	}
}

// Sample returns the amplitude at time t (seconds) on the given channel.
func (tn Tone) Sample(t float64, channel int) float64 {
	return tn.Amplitude * math.Sin(2*math.Pi*tn.Frequency*t+Phase(channel))
}

// Phase is 0 for even channels and π for odd ones.
func Phase(channel int) float64 {
	return math.Pi * float64(channel&1)
}

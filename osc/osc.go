// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// Oscillator is a pull-based stream of floating-point amplitude values.
// Nothing is computed until a consumer asks for the next sample, so
// oscillators describe unbounded waveforms without materializing them.
type Oscillator interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// NextSample advances the oscillator by one sample period and returns
	// the next amplitude value. It returns io.EOF when the stream is
	// finished; most oscillators never finish.
	NextSample() (float64, error)
}

// mod1 returns x modulo 1 in [0, 1), also for negative x.
func mod1(x float64) float64 {
	return x - math.Floor(x)
}

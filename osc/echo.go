// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// echoAudibleFloor is the sound pressure level below which an echo tap is
// treated as inaudible and not computed at all.
const echoAudibleFloor = 1e-6

// Echo mixes a number of decaying echoes of a source oscillator into
// itself. The source plays unmodified for `after` seconds, then every
// output sample is the sum of the dry signal and `amount` taps, the k-th
// tap delayed by k*delay seconds and scaled by decay^k.
//
// All taps read the same underlying source at different offsets. Instead
// of buffering per tap, a single ring buffer holds exactly the span the
// most-delayed tap still needs, so memory stays proportional to
// amount*delay*sampleRate samples.
//
// A decay factor above 1 makes the echoes grow instead; the caller is
// responsible for keeping amount bounded in that case.
type Echo struct {
	src         Oscillator
	passthrough int       // samples to relay before the echoes start
	gains       []float64 // gains[0] is the dry branch
	spacing     int       // samples between adjacent taps
	ring        []float64
	n           int // samples produced since the echoes started
}

// NewEcho mixes amount echoes of src into itself, starting after the
// given number of seconds, spaced delay seconds apart and each decayed by
// the given factor. With a very short delay the echoes blend into the
// sound and the effect is closer to a reverb. For decay < 1, amount is
// capped at the tap count beyond which an echo can no longer be heard.
func NewEcho(src Oscillator, after float64, amount int, delay, decay float64) *Echo {
	rate := float64(src.SampleRate())
	if decay <= 0 {
		amount = 0
	} else if decay < 1 {
		// avoid computing echoes that you can't hear
		limit := int(math.Log(echoAudibleFloor) / math.Log(decay))
		if amount > limit {
			amount = limit
		}
	}
	gains := make([]float64, amount+1)
	g := 1.0
	for i := range gains {
		gains[i] = g
		g *= decay
	}
	spacing := int(delay * rate)
	return &Echo{
		src:         src,
		passthrough: int(rate * after),
		gains:       gains,
		spacing:     spacing,
		ring:        make([]float64, amount*spacing+1),
	}
}

func (e *Echo) SampleRate() int { return e.src.SampleRate() }

// Taps reports the number of echo taps actually mixed in, after the
// inaudibility cap has been applied.
func (e *Echo) Taps() int { return len(e.gains) - 1 }

func (e *Echo) NextSample() (float64, error) {
	if e.passthrough > 0 {
		e.passthrough--
		return e.src.NextSample()
	}
	v, err := e.src.NextSample()
	if err != nil {
		return 0, err
	}
	e.ring[e.n%len(e.ring)] = v
	var sum float64
	for k, g := range e.gains {
		idx := e.n - k*e.spacing
		if idx < 0 {
			// this tap's delay has not elapsed yet
			continue
		}
		sum += g * e.ring[idx%len(e.ring)]
	}
	e.n++
	return sum, nil
}

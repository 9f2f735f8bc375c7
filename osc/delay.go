// SPDX-License-Identifier: EPL-2.0

package osc

// Delay shifts a source oscillator in time. A positive offset emits
// silence before relaying the source; a negative offset skips ahead,
// discarding the first samples without ever emitting them.
//
// To precisely phase-shift a periodic oscillator, prefer the phase
// parameter of the oscillator itself.
type Delay struct {
	src     Oscillator
	silence int // silence samples still to emit
	skip    int // source samples still to discard
}

// NewDelay delays src by the given number of seconds (negative to skip ahead).
func NewDelay(src Oscillator, seconds float64) *Delay {
	d := &Delay{src: src}
	n := int(float64(src.SampleRate()) * seconds)
	if n >= 0 {
		d.silence = n
	} else {
		d.skip = -n
	}
	return d
}

func (d *Delay) SampleRate() int { return d.src.SampleRate() }

func (d *Delay) NextSample() (float64, error) {
	for d.skip > 0 {
		if _, err := d.src.NextSample(); err != nil {
			return 0, err
		}
		d.skip--
	}
	if d.silence > 0 {
		d.silence--
		return 0, nil
	}
	return d.src.NextSample()
}

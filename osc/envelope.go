// SPDX-License-Identifier: EPL-2.0

package osc

import "io"

// ADSR holds the parameters of a four-segment volume envelope. Segment
// durations are in seconds; SustainLevel is the amplitude factor held
// during the sustain segment.
type ADSR struct {
	Attack       float64
	Decay        float64
	Sustain      float64
	SustainLevel float64
	Release      float64
	// StopAtEnd terminates the stream once the release has finished
	// instead of producing silence forever.
	StopAtEnd bool
	// Cycle restarts the envelope at the attack segment after the
	// release has finished.
	Cycle bool
}

type envelopeState int

const (
	envAttack envelopeState = iota
	envDecay
	envSustain
	envRelease
	envReleaseTail
	envSilent
	envDone
)

// Envelope applies an ADSR volume envelope to a source oscillator.
// The gain ramps 0→1 over the attack, 1→SustainLevel over the decay,
// holds SustainLevel for the sustain, and ramps back to 0 over the
// release. Zero-length segments are skipped entirely. During the ADSR
// segments the source is pulled exactly once per emitted sample; once the
// envelope has finished it is not pulled at all.
type Envelope struct {
	src  Oscillator
	adsr ADSR

	state      envelopeState
	step       float64 // seconds per sample
	time       float64
	gain       float64
	gainChange float64
	endDecay   float64
	endSustain float64
	endRelease float64
}

// NewEnvelope wraps src in an ADSR volume envelope.
func NewEnvelope(src Oscillator, adsr ADSR) (*Envelope, error) {
	if adsr.Attack < 0 || adsr.Decay < 0 || adsr.Sustain < 0 || adsr.Release < 0 {
		return nil, ErrEnvelopeDuration
	}
	if adsr.SustainLevel < 0 || adsr.SustainLevel > 1 {
		return nil, ErrSustainLevel
	}
	e := &Envelope{
		src:  src,
		adsr: adsr,
		step: 1 / float64(src.SampleRate()),
	}
	e.restart()
	return e, nil
}

func (e *Envelope) restart() {
	e.state = envAttack
	e.time = 0
	e.gain = 0
	e.endDecay = e.adsr.Attack + e.adsr.Decay
	e.endSustain = e.endDecay + e.adsr.Sustain
	e.endRelease = e.endSustain + e.adsr.Release
	if e.adsr.Attack > 0 {
		e.gainChange = 1 / e.adsr.Attack * e.step
	}
}

// finish decides what follows the release segment.
func (e *Envelope) finish() {
	switch {
	case e.adsr.Cycle:
		e.restart()
	case e.adsr.StopAtEnd:
		e.state = envDone
	default:
		e.state = envSilent
	}
}

// emit pulls one source sample, applies the current gain and advances the
// envelope clock.
func (e *Envelope) emit() (float64, error) {
	v, err := e.src.NextSample()
	if err != nil {
		return 0, err
	}
	out := v * e.gain
	e.gain += e.gainChange
	e.time += e.step
	return out, nil
}

func (e *Envelope) SampleRate() int { return e.src.SampleRate() }

func (e *Envelope) NextSample() (float64, error) {
	for {
		switch e.state {
		case envAttack:
			if e.adsr.Attack > 0 && e.time < e.adsr.Attack {
				return e.emit()
			}
			e.state = envDecay
			e.gain = 1
			if e.adsr.Decay > 0 {
				e.gainChange = (e.adsr.SustainLevel - 1) / e.adsr.Decay * e.step
			}
		case envDecay:
			if e.adsr.Decay > 0 && e.time < e.endDecay {
				return e.emit()
			}
			e.state = envSustain
			e.gain = e.adsr.SustainLevel
			e.gainChange = 0
		case envSustain:
			if e.time < e.endSustain {
				return e.emit()
			}
			e.state = envRelease
			e.gain = e.adsr.SustainLevel
			if e.adsr.Release > 0 {
				e.gainChange = -e.adsr.SustainLevel / e.adsr.Release * e.step
			}
		case envRelease:
			if e.adsr.Release > 0 && e.time < e.endRelease {
				return e.emit()
			}
			if e.adsr.Release > 0 && e.gain > 0 {
				// residual gain from rounding: let it ring out for
				// one more sample instead of cutting it off
				e.state = envReleaseTail
				continue
			}
			e.finish()
		case envReleaseTail:
			e.gainChange = 0
			out, err := e.emit()
			if err != nil {
				return 0, err
			}
			e.finish()
			return out, nil
		case envSilent:
			return 0, nil
		default:
			return 0, io.EOF
		}
	}
}

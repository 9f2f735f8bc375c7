// SPDX-License-Identifier: EPL-2.0

// Package osc provides the low-level waveform generators and stream
// combinators of the synthesizer.
//
// # Oscillator Interface
//
// Everything in this package is built around one pull-based interface:
//
//	type Oscillator interface {
//	    SampleRate() int
//	    NextSample() (float64, error)
//	}
//
// An oscillator is a stateful generator: every NextSample call advances it
// by exactly one sample period. Streams are unbounded by default, the
// consumer decides when to stop pulling. A finished stream (for example an
// Envelope with StopAtEnd) reports io.EOF. Restarting means constructing a
// fresh oscillator, instances never rewind.
//
// # Primitive Oscillators
//
// Sine, Triangle, Square, Sawtooth, Pulse and Harmonics generate the
// classic waveform shapes and accept an optional FM source: a second
// oscillator whose samples are read as relative frequency deviations. A
// shared phase-correction technique keeps the waveform continuous when the
// instantaneous frequency changes between samples, so frequency sweeps do
// not click.
//
// Using FM costs extra work every sample. When the parameters are fixed,
// use the Fast variants instead:
//
//	o := osc.NewFastSine(440, 0.9, 0, 0, 44100)
//	v, _ := o.NextSample()
//
// FastPulse still accepts a PWM source but not FM. WhiteNoise and Linear
// complete the set; Linear doubles as a cheap constant or ramping
// modulation source for FM and PWM inputs.
//
// # Combinators
//
// Combinators wrap one or more oscillators into a new one and satisfy the
// same interface, so they chain arbitrarily:
//
//	tone := osc.NewFastSine(440, 0.9, 0, 0, 44100)
//	env, _ := osc.NewEnvelope(tone, osc.ADSR{
//	    Attack: 0.05, Decay: 0.1, Sustain: 0.5, SustainLevel: 0.6, Release: 0.3,
//	})
//	wet := osc.NewEcho(env, 0.25, 6, 0.2, 0.7)
//
// Available combinators: NewEnvelope (ADSR), NewDelay, NewMix,
// NewAmpModulate, NewAbs, NewClip, NewMap and NewEcho. None of them
// materializes the source; only Echo buffers, and only as much as its
// most-delayed tap still needs.
//
// # Validation
//
// Primitive constructors do not validate their parameters; range checking
// (Nyquist limit, amplitude and bias ranges) is the job of the synthesizer
// facade in the root package. The documented per-sample corrections -- the
// pulse duty factor clamp and the harmonic Nyquist cap -- are part of the
// numeric contract, not errors.
package osc

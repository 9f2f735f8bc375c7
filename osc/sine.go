// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// Sine is a sine wave oscillator with optional frequency modulation.
//
// When an FM source is attached, the instantaneous frequency changes every
// sample. The oscillator accumulates a phase correction term so the waveform
// stays continuous across those changes instead of jumping to the phase the
// new frequency would have had at t=0.
// Frequency, Amplitude and Bias may be changed while the stream is running.
type Sine struct {
	Frequency float64
	Amplitude float64
	Bias      float64

	fm         Oscillator
	sampleRate int
	step       float64 // radians per sample period
	t          float64
	correction float64
	prevFreq   float64
}

// NewSine creates a sine oscillator. phase is expressed in cycles.
// fm may be nil; when set it yields a relative frequency deviation per
// sample (0 means no deviation, 0.5 means frequency*1.5).
func NewSine(frequency, amplitude, phase, bias float64, fm Oscillator, sampleRate int) *Sine {
	return &Sine{
		Frequency:  frequency,
		Amplitude:  amplitude,
		Bias:       bias,
		fm:         fm,
		sampleRate: sampleRate,
		step:       2 * math.Pi / float64(sampleRate),
		correction: phase * 2 * math.Pi,
		prevFreq:   frequency,
	}
}

func (s *Sine) SampleRate() int { return s.sampleRate }

func (s *Sine) NextSample() (float64, error) {
	freq := s.Frequency
	if s.fm != nil {
		deviation, err := s.fm.NextSample()
		if err != nil {
			return 0, err
		}
		freq *= 1 + deviation
	}
	s.correction += (s.prevFreq - freq) * s.t
	s.prevFreq = freq
	v := math.Sin(s.t*freq+s.correction)*s.Amplitude + s.Bias
	s.t += s.step
	return v, nil
}

// FastSine is a sine wave oscillator without FM support. Frequency and
// phase are fixed at construction, which keeps the per-sample work down
// to a single addition and sine evaluation.
type FastSine struct {
	Amplitude float64
	Bias      float64

	sampleRate int
	step       float64
	t          float64
}

// NewFastSine creates a fixed-frequency sine oscillator. phase is in cycles.
func NewFastSine(frequency, amplitude, phase, bias float64, sampleRate int) *FastSine {
	return &FastSine{
		Amplitude:  amplitude,
		Bias:       bias,
		sampleRate: sampleRate,
		step:       2 * math.Pi * frequency / float64(sampleRate),
		t:          phase * 2 * math.Pi,
	}
}

func (s *FastSine) SampleRate() int { return s.sampleRate }

func (s *FastSine) NextSample() (float64, error) {
	v := math.Sin(s.t)*s.Amplitude + s.Bias
	s.t += s.step
	return v, nil
}

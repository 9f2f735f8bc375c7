// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// Triangle is a perfect (non harmonic based) triangle wave oscillator with
// optional frequency modulation. Phase correction keeps the waveform
// continuous when the FM source changes the instantaneous frequency.
type Triangle struct {
	Frequency float64
	Amplitude float64
	Bias      float64

	fm         Oscillator
	sampleRate int
	step       float64
	t          float64
	correction float64
	prevFreq   float64
}

// NewTriangle creates a triangle oscillator. phase is in cycles, fm may be nil.
func NewTriangle(frequency, amplitude, phase, bias float64, fm Oscillator, sampleRate int) *Triangle {
	return &Triangle{
		Frequency:  frequency,
		Amplitude:  amplitude,
		Bias:       bias,
		fm:         fm,
		sampleRate: sampleRate,
		step:       1 / float64(sampleRate),
		correction: phase,
		prevFreq:   frequency,
	}
}

func (o *Triangle) SampleRate() int { return o.sampleRate }

func (o *Triangle) NextSample() (float64, error) {
	freq := o.Frequency
	if o.fm != nil {
		deviation, err := o.fm.NextSample()
		if err != nil {
			return 0, err
		}
		freq *= 1 + deviation
	}
	o.correction += (o.prevFreq - freq) * o.t
	o.prevFreq = freq
	q := o.t*freq + o.correction
	v := 4*o.Amplitude*(math.Abs(mod1(q+0.75)-0.5)-0.25) + o.Bias
	o.t += o.step
	return v, nil
}

// FastTriangle is a triangle wave oscillator without FM support.
// Frequency and phase are fixed at construction.
type FastTriangle struct {
	Amplitude float64
	Bias      float64

	frequency  float64
	sampleRate int
	step       float64
	t          float64
}

// NewFastTriangle creates a fixed-frequency triangle oscillator. phase is in cycles.
func NewFastTriangle(frequency, amplitude, phase, bias float64, sampleRate int) *FastTriangle {
	return &FastTriangle{
		Amplitude:  amplitude,
		Bias:       bias,
		frequency:  frequency,
		sampleRate: sampleRate,
		step:       1 / float64(sampleRate),
		t:          phase / frequency,
	}
}

func (o *FastTriangle) SampleRate() int { return o.sampleRate }

func (o *FastTriangle) NextSample() (float64, error) {
	v := 4*o.Amplitude*(math.Abs(mod1(o.t*o.frequency+0.75)-0.5)-0.25) + o.Bias
	o.t += o.step
	return v, nil
}

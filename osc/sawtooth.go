// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// Sawtooth is a perfect sawtooth waveform oscillator with optional
// frequency modulation. The ramp is centered: it wraps from +amplitude
// back to -amplitude around the bias level.
type Sawtooth struct {
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

// NewSawtooth creates a sawtooth oscillator. phase is in cycles, fm may be nil.
func NewSawtooth(frequency, amplitude, phase, bias float64, fm Oscillator, sampleRate int) *Sawtooth {
	return &Sawtooth{
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

func (o *Sawtooth) SampleRate() int { return o.sampleRate }

func (o *Sawtooth) NextSample() (float64, error) {
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
	v := o.Bias + 2*o.Amplitude*(q-math.Floor(0.5+q))
	o.t += o.step
	return v, nil
}

// FastSawtooth is a sawtooth waveform oscillator without FM support.
// Frequency and phase are fixed at construction.
type FastSawtooth struct {
	Amplitude float64
	Bias      float64

	frequency  float64
	sampleRate int
	step       float64
	t          float64
}

// NewFastSawtooth creates a fixed-frequency sawtooth oscillator. phase is in cycles.
func NewFastSawtooth(frequency, amplitude, phase, bias float64, sampleRate int) *FastSawtooth {
	return &FastSawtooth{
		Amplitude:  amplitude,
		Bias:       bias,
		frequency:  frequency,
		sampleRate: sampleRate,
		step:       1 / float64(sampleRate),
		t:          phase / frequency,
	}
}

func (o *FastSawtooth) SampleRate() int { return o.sampleRate }

func (o *FastSawtooth) NextSample() (float64, error) {
	q := o.t * o.frequency
	v := o.Bias + 2*o.Amplitude*(q-math.Floor(0.5+q))
	o.t += o.step
	return v, nil
}

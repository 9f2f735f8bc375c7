// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// epsilon is the smallest pulse width distance from the degenerate
// always-high / always-low duty cycles.
var epsilon = math.Nextafter(1, 2) - 1

// clampDuty forces a duty factor into the open interval (0, 1) so the
// pulse never degenerates into a constant output.
func clampDuty(pw float64) float64 {
	if pw <= 0 {
		return epsilon
	}
	if pw >= 1 {
		return 1 - epsilon
	}
	return pw
}

// Pulse is a perfect pulse waveform oscillator with optional frequency
// modulation and optional pulse-width modulation. When a PWM source is
// attached the fixed pulse width is ignored; the PWM source should yield
// duty factors between 0 and 1, values outside that range are clamped.
type Pulse struct {
	Frequency  float64
	Amplitude  float64
	Bias       float64
	PulseWidth float64

	fm         Oscillator
	pwm        Oscillator
	sampleRate int
	step       float64
	t          float64
	correction float64
	prevFreq   float64
}

// NewPulse creates a pulse oscillator. phase is in cycles; fm and pwm may be nil.
func NewPulse(frequency, amplitude, phase, bias, pulseWidth float64, fm, pwm Oscillator, sampleRate int) *Pulse {
	return &Pulse{
		Frequency:  frequency,
		Amplitude:  amplitude,
		Bias:       bias,
		PulseWidth: pulseWidth,
		fm:         fm,
		pwm:        pwm,
		sampleRate: sampleRate,
		step:       1 / float64(sampleRate),
		correction: phase,
		prevFreq:   frequency,
	}
}

func (o *Pulse) SampleRate() int { return o.sampleRate }

func (o *Pulse) NextSample() (float64, error) {
	pw := o.PulseWidth
	if o.pwm != nil {
		v, err := o.pwm.NextSample()
		if err != nil {
			return 0, err
		}
		pw = v
	}
	pw = clampDuty(pw)
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
	v := o.Amplitude
	if mod1(q) >= pw {
		v = -o.Amplitude
	}
	o.t += o.step
	return v + o.Bias, nil
}

// FastPulse is a pulse waveform oscillator without FM support. Frequency
// and phase are fixed at construction. It still supports an optional PWM
// source; when one is attached the fixed pulse width is ignored.
type FastPulse struct {
	Amplitude float64
	Bias      float64

	frequency  float64
	pulseWidth float64
	pwm        Oscillator
	sampleRate int
	step       float64
	t          float64
}

// NewFastPulse creates a fixed-frequency pulse oscillator. phase is in
// cycles; pwm may be nil.
func NewFastPulse(frequency, amplitude, phase, bias, pulseWidth float64, pwm Oscillator, sampleRate int) *FastPulse {
	return &FastPulse{
		Amplitude:  amplitude,
		Bias:       bias,
		frequency:  frequency,
		pulseWidth: pulseWidth,
		pwm:        pwm,
		sampleRate: sampleRate,
		step:       1 / float64(sampleRate),
		t:          phase / frequency,
	}
}

func (o *FastPulse) SampleRate() int { return o.sampleRate }

func (o *FastPulse) NextSample() (float64, error) {
	pw := o.pulseWidth
	if o.pwm != nil {
		v, err := o.pwm.NextSample()
		if err != nil {
			return 0, err
		}
		pw = v
	}
	pw = clampDuty(pw)
	v := o.Amplitude
	if mod1(o.t*o.frequency) >= pw {
		v = -o.Amplitude
	}
	o.t += o.step
	return v + o.Bias, nil
}

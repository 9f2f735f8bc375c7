// SPDX-License-Identifier: EPL-2.0

package osc

import "github.com/hemretez/synthesizer/utils"

// Linear is an oscillator that produces a linearly sloped value until it
// reaches a minimum or maximum bound, then holds there. With a zero
// increment it is a constant source, which makes it useful as an FM or
// PWM modulation input.
type Linear struct {
	increment  float64
	minValue   float64
	maxValue   float64
	value      float64
	sampleRate int
}

// NewLinear creates a linear ramp starting at startLevel, moving by
// increment per sample, clamped to [minValue, maxValue].
func NewLinear(startLevel, increment, minValue, maxValue float64, sampleRate int) *Linear {
	return &Linear{
		increment:  increment,
		minValue:   minValue,
		maxValue:   maxValue,
		value:      startLevel,
		sampleRate: sampleRate,
	}
}

func (o *Linear) SampleRate() int { return o.sampleRate }

func (o *Linear) NextSample() (float64, error) {
	v := o.value
	if o.increment != 0 {
		o.value = utils.Clamp(o.value+o.increment, o.minValue, o.maxValue)
	}
	return v, nil
}

// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math"

	"github.com/hemretez/synthesizer/utils"
)

// Map applies a caller-supplied function to every sample of a source
// oscillator.
type Map struct {
	src Oscillator
	fn  func(float64) float64
}

// NewMap wraps src so fn is applied to every pulled sample.
func NewMap(src Oscillator, fn func(float64) float64) *Map {
	return &Map{src: src, fn: fn}
}

func (m *Map) SampleRate() int { return m.src.SampleRate() }

func (m *Map) NextSample() (float64, error) {
	v, err := m.src.NextSample()
	if err != nil {
		return 0, err
	}
	return m.fn(v), nil
}

// NewAbs wraps src so every sample is replaced by its absolute value.
func NewAbs(src Oscillator) *Map {
	return NewMap(src, math.Abs)
}

// NewClip wraps src so every sample is clamped to [minimum, maximum].
// Either bound may be NaN to leave it open; an open bound defaults to the
// representable float64 extreme. Leaving both bounds open is an error.
func NewClip(src Oscillator, minimum, maximum float64) (*Map, error) {
	if math.IsNaN(minimum) && math.IsNaN(maximum) {
		return nil, ErrClipBounds
	}
	if math.IsNaN(minimum) {
		minimum = -math.MaxFloat64
	}
	if math.IsNaN(maximum) {
		maximum = math.MaxFloat64
	}
	lo, hi := minimum, maximum
	return NewMap(src, func(v float64) float64 {
		return utils.Clamp(v, lo, hi)
	}), nil
}

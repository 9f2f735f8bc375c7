// SPDX-License-Identifier: EPL-2.0

package osctest

import "io"

// Osc is a test helper oscillator driven by a sample-index function.
// It matches the osc.Oscillator interface (without importing it to avoid cycles).
type Osc struct {
	sampleRate int
	total      int // total samples to generate; < 0 means unbounded
	generated  int
	waveform   func(sample int) float64
}

// New creates a mock oscillator producing waveform(i) for sample index i.
// A negative total makes the stream unbounded.
func New(sampleRate, total int, waveform func(sample int) float64) *Osc {
	return &Osc{
		sampleRate: sampleRate,
		total:      total,
		waveform:   waveform,
	}
}

// NewConstant creates a mock oscillator with a constant value.
func NewConstant(sampleRate, total int, value float64) *Osc {
	return New(sampleRate, total, func(sample int) float64 {
		return value
	})
}

// NewSilent creates a mock oscillator that generates silence (all zeros).
func NewSilent(sampleRate, total int) *Osc {
	return NewConstant(sampleRate, total, 0)
}

func (o *Osc) SampleRate() int { return o.sampleRate }

// Reset rewinds the sample counter to allow re-reading.
func (o *Osc) Reset() {
	o.generated = 0
}

func (o *Osc) NextSample() (float64, error) {
	if o.total >= 0 && o.generated >= o.total {
		return 0, io.EOF
	}
	v := o.waveform(o.generated)
	o.generated++
	return v, nil
}

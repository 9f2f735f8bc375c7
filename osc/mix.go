// SPDX-License-Identifier: EPL-2.0

package osc

// Mix adds the waves of two oscillators into one output wave. One sample
// is pulled from each source per output sample; the stream ends when
// either source ends.
type Mix struct {
	a, b Oscillator
}

// NewMix mixes a and b sample by sample.
func NewMix(a, b Oscillator) *Mix {
	return &Mix{a: a, b: b}
}

func (m *Mix) SampleRate() int { return m.a.SampleRate() }

func (m *Mix) NextSample() (float64, error) {
	va, err := m.a.NextSample()
	if err != nil {
		return 0, err
	}
	vb, err := m.b.NextSample()
	if err != nil {
		return 0, err
	}
	return va + vb, nil
}

// AmpModulate multiplies a source oscillator by a modulator oscillator,
// sample by sample.
type AmpModulate struct {
	src, mod Oscillator
}

// NewAmpModulate modulates the amplitude of src by mod.
func NewAmpModulate(src, mod Oscillator) *AmpModulate {
	return &AmpModulate{src: src, mod: mod}
}

func (m *AmpModulate) SampleRate() int { return m.src.SampleRate() }

func (m *AmpModulate) NextSample() (float64, error) {
	v, err := m.src.NextSample()
	if err != nil {
		return 0, err
	}
	g, err := m.mod.NextSample()
	if err != nil {
		return 0, err
	}
	return v * g, nil
}

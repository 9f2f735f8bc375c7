// SPDX-License-Identifier: EPL-2.0

package osc

// Square is a perfect square wave [max/-max] oscillator with optional
// frequency modulation. It is cheap to generate but sounds harsher than
// the harmonics-based SquareHarmonics.
type Square struct {
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

// NewSquare creates a square oscillator. phase is in cycles, fm may be nil.
func NewSquare(frequency, amplitude, phase, bias float64, fm Oscillator, sampleRate int) *Square {
	return &Square{
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

func (o *Square) SampleRate() int { return o.sampleRate }

func (o *Square) NextSample() (float64, error) {
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
	if int(q*2)%2 != 0 {
		v = -o.Amplitude
	}
	o.t += o.step
	return v + o.Bias, nil
}

// FastSquare is a square wave oscillator without FM support.
// Frequency and phase are fixed at construction.
type FastSquare struct {
	Amplitude float64
	Bias      float64

	frequency  float64
	sampleRate int
	step       float64
	t          float64
}

// NewFastSquare creates a fixed-frequency square oscillator. phase is in cycles.
func NewFastSquare(frequency, amplitude, phase, bias float64, sampleRate int) *FastSquare {
	return &FastSquare{
		Amplitude:  amplitude,
		Bias:       bias,
		frequency:  frequency,
		sampleRate: sampleRate,
		step:       1 / float64(sampleRate),
		t:          phase / frequency,
	}
}

func (o *FastSquare) SampleRate() int { return o.sampleRate }

func (o *FastSquare) NextSample() (float64, error) {
	v := o.Amplitude
	if int(o.t*o.frequency*2)%2 != 0 {
		v = -o.Amplitude
	}
	o.t += o.step
	return v + o.Bias, nil
}

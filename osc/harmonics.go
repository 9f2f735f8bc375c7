// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// Harmonics is an oscillator that builds its waveform by summing harmonic
// sine waves. It is computationally heavy compared to the perfect-shape
// oscillators because every sample adds many sine evaluations.
//
// Harmonics whose frequency would exceed the Nyquist limit are dropped,
// the effective harmonic count is re-evaluated every sample so a changed
// Frequency takes effect immediately.
type Harmonics struct {
	Frequency float64
	Amplitude float64
	Bias      float64

	numHarmonics int
	onlyEven     bool
	onlyOdd      bool
	fm           Oscillator
	sampleRate   int
	step         float64
	t            float64
	correction   float64
	prevFreq     float64
}

// NewHarmonics creates a harmonics oscillator. phase is in cycles, fm may
// be nil. onlyEven keeps even harmonics plus a fixed fundamental; onlyOdd
// keeps odd harmonics only; with neither set all harmonics are summed with
// a 1/(2k) weighting.
func NewHarmonics(frequency float64, numHarmonics int, amplitude, phase, bias float64, onlyEven, onlyOdd bool, fm Oscillator, sampleRate int) *Harmonics {
	return &Harmonics{
		Frequency:    frequency,
		Amplitude:    amplitude,
		Bias:         bias,
		numHarmonics: numHarmonics,
		onlyEven:     onlyEven,
		onlyOdd:      onlyOdd,
		fm:           fm,
		sampleRate:   sampleRate,
		step:         2 * math.Pi / float64(sampleRate),
		correction:   phase * 2 * math.Pi,
		prevFreq:     frequency,
	}
}

func (o *Harmonics) SampleRate() int { return o.sampleRate }

func (o *Harmonics) NextSample() (float64, error) {
	// drop harmonics above the Nyquist frequency
	num := min(o.numHarmonics, int(float64(o.sampleRate)/2/o.Frequency))
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

	var h float64
	switch {
	case o.onlyOdd:
		for k := 1; k < 2*num; k += 2 {
			h += math.Sin(q*float64(k)) / float64(k)
		}
	case o.onlyEven:
		// always include harmonic #1 as base
		h = math.Sin(q) * 0.7
		for k := 2; k < 2*num; k += 2 {
			h += math.Sin(q*float64(k)) / float64(k)
		}
	default:
		for k := 1; k <= num; k++ {
			h += math.Sin(q*float64(k)) / float64(k) / 2
		}
	}
	o.t += o.step
	return h*o.Amplitude + o.Bias, nil
}

// NewSquareHarmonics creates a square wave built from odd-integer
// harmonics. It sounds more natural than the perfect Square but is much
// heavier to generate.
func NewSquareHarmonics(frequency float64, numHarmonics int, amplitude, phase, bias float64, fm Oscillator, sampleRate int) *Harmonics {
	return NewHarmonics(frequency, numHarmonics, amplitude, phase, bias, false, true, fm, sampleRate)
}

// SawtoothHarmonics is a sawtooth wave built from harmonic sine waves.
// It shifts the phase by half a cycle and mirrors the summed waveform so
// its sign convention matches the perfect Sawtooth.
type SawtoothHarmonics struct {
	*Harmonics
}

// NewSawtoothHarmonics creates a harmonics-based sawtooth oscillator.
// phase is in cycles, fm may be nil.
func NewSawtoothHarmonics(frequency float64, numHarmonics int, amplitude, phase, bias float64, fm Oscillator, sampleRate int) *SawtoothHarmonics {
	return &SawtoothHarmonics{
		Harmonics: NewHarmonics(frequency, numHarmonics, amplitude, phase+0.5, bias, false, false, fm, sampleRate),
	}
}

func (o *SawtoothHarmonics) NextSample() (float64, error) {
	v, err := o.Harmonics.NextSample()
	if err != nil {
		return 0, err
	}
	return o.Bias*2 - v, nil
}

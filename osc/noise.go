// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math/rand"
	"time"
)

// WhiteNoise is an oscillator producing uniformly distributed random
// values in [-amplitude, amplitude] around the bias level. Every sample
// is independent; the only state is the random generator.
type WhiteNoise struct {
	Amplitude float64
	Bias      float64

	rng        *rand.Rand
	sampleRate int
}

// NewWhiteNoise creates a white noise oscillator. rng may be nil, in which
// case a time-seeded generator is used; pass a seeded generator to get a
// deterministic sequence.
func NewWhiteNoise(amplitude, bias float64, rng *rand.Rand, sampleRate int) *WhiteNoise {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &WhiteNoise{
		Amplitude:  amplitude,
		Bias:       bias,
		rng:        rng,
		sampleRate: sampleRate,
	}
}

func (o *WhiteNoise) SampleRate() int { return o.sampleRate }

func (o *WhiteNoise) NextSample() (float64, error) {
	return (o.rng.Float64()*2-1)*o.Amplitude + o.Bias, nil
}

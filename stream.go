// SPDX-License-Identifier: EPL-2.0

package synthesizer

import (
	"io"

	"github.com/hemretez/synthesizer/osc"
)

// SampleStream pulls quantized integer samples from an oscillator in
// blocks. Waveform streams are unbounded; LinearStream is finite and
// reports io.EOF once its duration has been produced.
type SampleStream struct {
	osc       osc.Oscillator
	remaining int // samples left to produce; < 0 means unbounded
}

func newSampleStream(o osc.Oscillator, total int) *SampleStream {
	return &SampleStream{
		osc:       o,
		remaining: total,
	}
}

// SampleRate of the stream in Hz.
func (s *SampleStream) SampleRate() int { return s.osc.SampleRate() }

// ReadSamples fills dst with quantized samples. It returns the number of
// samples written; when the stream is finished it returns io.EOF, possibly
// together with a final short read.
func (s *SampleStream) ReadSamples(dst []int) (int, error) {
	if s.remaining == 0 {
		return 0, io.EOF
	}
	n := len(dst)
	if s.remaining > 0 && n > s.remaining {
		n = s.remaining
	}
	for i := 0; i < n; i++ {
		v, err := s.osc.NextSample()
		if err != nil {
			return i, err
		}
		dst[i] = int(v)
	}
	if s.remaining > 0 {
		s.remaining -= n
		if s.remaining == 0 {
			return n, io.EOF
		}
	}
	return n, nil
}

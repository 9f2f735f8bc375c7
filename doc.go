// SPDX-License-Identifier: EPL-2.0

// Package synthesizer generates waveform samples with adjustable
// parameters, inspired by FM synthesizers such as the Yamaha DX-7.
//
// # Quick Start
//
// The WaveSynth facade renders finite waveforms into quantized PCM
// buffers:
//
//	synth, err := synthesizer.NewWaveSynth(44100, 2)
//	if err != nil { ... }
//
//	// one second of A4 at 80% amplitude
//	buf, err := synth.Sine(synthesizer.KeyFreq(49), 1.0, 0.8, 0, 0, nil)
//
// The result is a mono *audio.IntBuffer from github.com/go-audio/audio,
// ready to hand to any go-audio consumer (for example a WAV encoder).
//
// # Waveform Shapes
//
// WaveSynth supports sine, square (perfect or harmonics-based), triangle,
// sawtooth (perfect or harmonics-based), pulse, variable harmonics, white
// noise and linear ramps. Each shape has a render form (finite duration
// into a buffer) and a stream form (unbounded quantized SampleStream):
//
//	stream, err := synth.SquareStream(220, 0.75, 0, 0, nil)
//	block := make([]int, 4096)
//	n, err := stream.ReadSamples(block)
//
// # Modulation
//
// Any oscillator can serve as a modulation source. Supplying an FM LFO to
// a shape selects the phase-continuous FM-capable oscillator; without one
// the cheaper fixed-parameter variant is used:
//
//	vibrato := osc.NewFastSine(6, 0.01, 0, 0, 44100)
//	buf, err := synth.Sine(440, 2.0, 0.8, 0, 0, vibrato)
//
// The pulse shape additionally accepts a PWM source controlling its duty
// factor per sample.
//
// # Building Blocks
//
// The osc subpackage exposes the oscillators themselves plus the stream
// combinators (ADSR envelope, delay, mix, amplitude modulation, clipping,
// echo) for callers that want to compose waveforms before rendering. See
// the osc package documentation.
//
// # Validation
//
// Parameters are checked once, when a waveform is created: the frequency
// must not exceed half the sample rate (the Nyquist limit), amplitude must
// be within [0, 1], bias within [-1, 1] and pulse width within [0, 1].
// There are no per-sample checks and no mid-stream failures; a stream that
// was constructed validly always produces a value per pull.
package synthesizer

// SPDX-License-Identifier: EPL-2.0

package synthesizer

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/hemretez/synthesizer/osc"
)

// WaveSynth is the waveform sample synthesizer. It can generate the
// classic wave shapes from mathematical functions: sine, square (perfect
// or with harmonics), triangle, sawtooth (perfect or with harmonics),
// variable harmonics and white noise, each with an optional LFO for
// frequency modulation.
//
// Every shape comes in two forms: a render form that pulls a finite
// duration into a quantized *audio.IntBuffer, and a stream form that
// returns an unbounded SampleStream of quantized integer samples. The
// resulting sample data is in 16 or 32 bit integer format depending on
// the configured sample width.
type WaveSynth struct {
	sampleRate  int
	sampleWidth int
	scale       float64
}

// NewWaveSynth creates a synthesizer producing samples at the given rate.
// sampleWidth is in bytes; only widths 2 and 4 are supported.
func NewWaveSynth(sampleRate, sampleWidth int) (*WaveSynth, error) {
	if sampleWidth != 2 && sampleWidth != 4 {
		return nil, ErrSampleWidth
	}
	return &WaveSynth{
		sampleRate:  sampleRate,
		sampleWidth: sampleWidth,
		scale:       float64(int64(1)<<(sampleWidth*8-1) - 1),
	}, nil
}

// SampleRate of all generated waveforms in Hz.
func (w *WaveSynth) SampleRate() int { return w.sampleRate }

// SampleWidth of the quantized output in bytes.
func (w *WaveSynth) SampleWidth() int { return w.sampleWidth }

// checkWave validates the shared waveform parameters once, at
// construction. Oscillators themselves never re-check these.
func (w *WaveSynth) checkWave(frequency, amplitude, bias float64) error {
	if frequency > float64(w.sampleRate)/2 {
		return ErrFrequencyRange
	}
	if amplitude < 0 || amplitude > 1 {
		return ErrAmplitudeRange
	}
	if bias < -1 || bias > 1 {
		return ErrBiasRange
	}
	return nil
}

// Sine renders a sine wave of the given duration, with optional FM from
// the supplied LFO.
func (w *WaveSynth) Sine(frequency, duration, amplitude, phase, bias float64, fm osc.Oscillator) (*goaudio.IntBuffer, error) {
	o, err := w.sine(frequency, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// SineStream returns an unbounded quantized sine wave stream, with
// optional FM from the supplied LFO.
func (w *WaveSynth) SineStream(frequency, amplitude, phase, bias float64, fm osc.Oscillator) (*SampleStream, error) {
	o, err := w.sine(frequency, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) sine(frequency, amplitude, phase, bias float64, fm osc.Oscillator) (osc.Oscillator, error) {
	if err := w.checkWave(frequency, amplitude, bias); err != nil {
		return nil, err
	}
	if fm != nil {
		return osc.NewSine(frequency, amplitude*w.scale, phase, bias*w.scale, fm, w.sampleRate), nil
	}
	return osc.NewFastSine(frequency, amplitude*w.scale, phase, bias*w.scale, w.sampleRate), nil
}

// Square renders a perfect square wave [max/-max] of the given duration.
// It is fast, but sounds less natural than the harmonics-based SquareH.
func (w *WaveSynth) Square(frequency, duration, amplitude, phase, bias float64, fm osc.Oscillator) (*goaudio.IntBuffer, error) {
	o, err := w.square(frequency, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// SquareStream returns an unbounded quantized perfect square wave stream.
func (w *WaveSynth) SquareStream(frequency, amplitude, phase, bias float64, fm osc.Oscillator) (*SampleStream, error) {
	o, err := w.square(frequency, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) square(frequency, amplitude, phase, bias float64, fm osc.Oscillator) (osc.Oscillator, error) {
	if err := w.checkWave(frequency, amplitude, bias); err != nil {
		return nil, err
	}
	if fm != nil {
		return osc.NewSquare(frequency, amplitude*w.scale, phase, bias*w.scale, fm, w.sampleRate), nil
	}
	return osc.NewFastSquare(frequency, amplitude*w.scale, phase, bias*w.scale, w.sampleRate), nil
}

// SquareH renders a square wave built from numHarmonics odd harmonic sine
// waves, which sounds more natural than the perfect Square.
func (w *WaveSynth) SquareH(frequency, duration float64, numHarmonics int, amplitude, phase, bias float64, fm osc.Oscillator) (*goaudio.IntBuffer, error) {
	o, err := w.squareH(frequency, numHarmonics, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// SquareHStream returns an unbounded quantized harmonics-based square
// wave stream.
func (w *WaveSynth) SquareHStream(frequency float64, numHarmonics int, amplitude, phase, bias float64, fm osc.Oscillator) (*SampleStream, error) {
	o, err := w.squareH(frequency, numHarmonics, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) squareH(frequency float64, numHarmonics int, amplitude, phase, bias float64, fm osc.Oscillator) (osc.Oscillator, error) {
	if err := w.checkWave(frequency, amplitude, bias); err != nil {
		return nil, err
	}
	return osc.NewSquareHarmonics(frequency, numHarmonics, amplitude*w.scale, phase, bias*w.scale, fm, w.sampleRate), nil
}

// Triangle renders a perfect triangle wave of the given duration, with
// optional FM from the supplied LFO.
func (w *WaveSynth) Triangle(frequency, duration, amplitude, phase, bias float64, fm osc.Oscillator) (*goaudio.IntBuffer, error) {
	o, err := w.triangle(frequency, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// TriangleStream returns an unbounded quantized triangle wave stream.
func (w *WaveSynth) TriangleStream(frequency, amplitude, phase, bias float64, fm osc.Oscillator) (*SampleStream, error) {
	o, err := w.triangle(frequency, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) triangle(frequency, amplitude, phase, bias float64, fm osc.Oscillator) (osc.Oscillator, error) {
	if err := w.checkWave(frequency, amplitude, bias); err != nil {
		return nil, err
	}
	if fm != nil {
		return osc.NewTriangle(frequency, amplitude*w.scale, phase, bias*w.scale, fm, w.sampleRate), nil
	}
	return osc.NewFastTriangle(frequency, amplitude*w.scale, phase, bias*w.scale, w.sampleRate), nil
}

// Sawtooth renders a perfect sawtooth wave of the given duration.
func (w *WaveSynth) Sawtooth(frequency, duration, amplitude, phase, bias float64, fm osc.Oscillator) (*goaudio.IntBuffer, error) {
	o, err := w.sawtooth(frequency, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// SawtoothStream returns an unbounded quantized sawtooth wave stream.
func (w *WaveSynth) SawtoothStream(frequency, amplitude, phase, bias float64, fm osc.Oscillator) (*SampleStream, error) {
	o, err := w.sawtooth(frequency, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) sawtooth(frequency, amplitude, phase, bias float64, fm osc.Oscillator) (osc.Oscillator, error) {
	if err := w.checkWave(frequency, amplitude, bias); err != nil {
		return nil, err
	}
	if fm != nil {
		return osc.NewSawtooth(frequency, amplitude*w.scale, phase, bias*w.scale, fm, w.sampleRate), nil
	}
	return osc.NewFastSawtooth(frequency, amplitude*w.scale, phase, bias*w.scale, w.sampleRate), nil
}

// SawtoothH renders a sawtooth wave built from numHarmonics harmonic sine
// waves.
func (w *WaveSynth) SawtoothH(frequency, duration float64, numHarmonics int, amplitude, phase, bias float64, fm osc.Oscillator) (*goaudio.IntBuffer, error) {
	o, err := w.sawtoothH(frequency, numHarmonics, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// SawtoothHStream returns an unbounded quantized harmonics-based sawtooth
// wave stream.
func (w *WaveSynth) SawtoothHStream(frequency float64, numHarmonics int, amplitude, phase, bias float64, fm osc.Oscillator) (*SampleStream, error) {
	o, err := w.sawtoothH(frequency, numHarmonics, amplitude, phase, bias, fm)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) sawtoothH(frequency float64, numHarmonics int, amplitude, phase, bias float64, fm osc.Oscillator) (osc.Oscillator, error) {
	if err := w.checkWave(frequency, amplitude, bias); err != nil {
		return nil, err
	}
	return osc.NewSawtoothHarmonics(frequency, numHarmonics, amplitude*w.scale, phase, bias*w.scale, fm, w.sampleRate), nil
}

// Pulse renders a perfect pulse wave of the given duration, with optional
// FM and/or pulse-width modulation. When a PWM source is supplied the
// fixed pulseWidth is ignored; the PWM source should yield duty factors
// between 0 and 1, values outside that range are clamped.
func (w *WaveSynth) Pulse(frequency, duration, amplitude, phase, bias, pulseWidth float64, fm, pwm osc.Oscillator) (*goaudio.IntBuffer, error) {
	o, err := w.pulse(frequency, amplitude, phase, bias, pulseWidth, fm, pwm)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// PulseStream returns an unbounded quantized pulse wave stream, with
// optional FM and/or pulse-width modulation.
func (w *WaveSynth) PulseStream(frequency, amplitude, phase, bias, pulseWidth float64, fm, pwm osc.Oscillator) (*SampleStream, error) {
	o, err := w.pulse(frequency, amplitude, phase, bias, pulseWidth, fm, pwm)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) pulse(frequency, amplitude, phase, bias, pulseWidth float64, fm, pwm osc.Oscillator) (osc.Oscillator, error) {
	if err := w.checkWave(frequency, amplitude, bias); err != nil {
		return nil, err
	}
	if pulseWidth < 0 || pulseWidth > 1 {
		return nil, ErrPulseWidthRange
	}
	if fm != nil {
		return osc.NewPulse(frequency, amplitude*w.scale, phase, bias*w.scale, pulseWidth, fm, pwm, w.sampleRate), nil
	}
	return osc.NewFastPulse(frequency, amplitude*w.scale, phase, bias*w.scale, pulseWidth, pwm, w.sampleRate), nil
}

// Harmonics renders a waveform built from numHarmonics harmonic sine
// waves. This is slow because many sine waves are added per sample.
func (w *WaveSynth) Harmonics(frequency, duration float64, numHarmonics int, amplitude, phase, bias float64, onlyEven, onlyOdd bool, fm osc.Oscillator) (*goaudio.IntBuffer, error) {
	o, err := w.harmonics(frequency, numHarmonics, amplitude, phase, bias, onlyEven, onlyOdd, fm)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// HarmonicsStream returns an unbounded quantized harmonics waveform stream.
func (w *WaveSynth) HarmonicsStream(frequency float64, numHarmonics int, amplitude, phase, bias float64, onlyEven, onlyOdd bool, fm osc.Oscillator) (*SampleStream, error) {
	o, err := w.harmonics(frequency, numHarmonics, amplitude, phase, bias, onlyEven, onlyOdd, fm)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) harmonics(frequency float64, numHarmonics int, amplitude, phase, bias float64, onlyEven, onlyOdd bool, fm osc.Oscillator) (osc.Oscillator, error) {
	if err := w.checkWave(frequency, amplitude, bias); err != nil {
		return nil, err
	}
	return osc.NewHarmonics(frequency, numHarmonics, amplitude*w.scale, phase, bias*w.scale, onlyEven, onlyOdd, fm, w.sampleRate), nil
}

// WhiteNoise renders a white noise (randomness) waveform of the given
// duration.
func (w *WaveSynth) WhiteNoise(duration, amplitude, bias float64) (*goaudio.IntBuffer, error) {
	o, err := w.whiteNoise(amplitude, bias)
	if err != nil {
		return nil, err
	}
	return w.render(o, duration)
}

// WhiteNoiseStream returns an unbounded quantized white noise stream.
func (w *WaveSynth) WhiteNoiseStream(amplitude, bias float64) (*SampleStream, error) {
	o, err := w.whiteNoise(amplitude, bias)
	if err != nil {
		return nil, err
	}
	return newSampleStream(o, -1), nil
}

func (w *WaveSynth) whiteNoise(amplitude, bias float64) (osc.Oscillator, error) {
	if err := w.checkWave(1, amplitude, bias); err != nil {
		return nil, err
	}
	return osc.NewWhiteNoise(amplitude*w.scale, bias*w.scale, nil, w.sampleRate), nil
}

// Linear renders a constant or linearly sloped waveform running from
// startLevel to finishLevel over the given duration. The levels are raw
// sample values; they are not scaled by the sample width.
func (w *WaveSynth) Linear(duration, startLevel, finishLevel float64) (*goaudio.IntBuffer, error) {
	o, _ := w.linear(duration, startLevel, finishLevel)
	return w.render(o, duration)
}

// LinearStream returns a quantized linear waveform stream. Unlike the
// other streams it is finite: it ends once the configured duration has
// been produced.
func (w *WaveSynth) LinearStream(duration, startLevel, finishLevel float64) *SampleStream {
	o, n := w.linear(duration, startLevel, finishLevel)
	return newSampleStream(o, n)
}

func (w *WaveSynth) linear(duration, startLevel, finishLevel float64) (osc.Oscillator, int) {
	numSamples := max(int(duration*float64(w.sampleRate)), 0)
	var increment float64
	if numSamples > 1 {
		increment = (finishLevel - startLevel) / float64(numSamples-1)
	}
	lo := math.Min(startLevel, finishLevel)
	hi := math.Max(startLevel, finishLevel)
	return osc.NewLinear(startLevel, increment, lo, hi, w.sampleRate), numSamples
}

// render pulls exactly duration*sampleRate samples from o and finalizes
// them into a single-channel quantized buffer.
func (w *WaveSynth) render(o osc.Oscillator, duration float64) (*goaudio.IntBuffer, error) {
	numSamples := max(int(duration*float64(w.sampleRate)), 0)
	data := make([]int, numSamples)
	for i := range data {
		v, err := o.NextSample()
		if err != nil {
			return nil, fmt.Errorf("rendering sample %d of %d: %w", i, numSamples, err)
		}
		data[i] = int(v)
	}
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  w.sampleRate,
		},
		Data:           data,
		SourceBitDepth: w.sampleWidth * 8,
	}, nil
}

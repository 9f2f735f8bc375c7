// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/hemretez/synthesizer/internal/osctest"
)

func TestSine_ConstantFMDeviation(t *testing.T) {
	t.Parallel()

	// a constant relative deviation d from the very first sample is
	// indistinguishable from an oscillator running at frequency*(1+d)
	const (
		rate = 44100
		freq = 440.0
		dev  = 0.25
	)
	modulated := NewSine(freq, 1, 0, 0, osctest.NewConstant(rate, -1, dev), rate)
	plain := NewFastSine(freq*(1+dev), 1, 0, 0, rate)

	a := pull(t, modulated, 500)
	b := pull(t, plain, 500)
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-6 {
			t.Fatalf("sample %d: modulated = %v, want %v", i, a[i], b[i])
		}
	}
}

func TestSine_PhaseContinuityAcrossFMStep(t *testing.T) {
	t.Parallel()

	// switching the deviation from 0 to 0.05 mid-stream must not produce
	// a jump larger than the waveform's own maximum per-sample slope
	const (
		rate   = 44100
		freq   = 440.0
		dev    = 0.05
		stepAt = 100
	)
	fm := osctest.New(rate, -1, func(sample int) float64 {
		if sample < stepAt {
			return 0
		}
		return dev
	})
	o := NewSine(freq, 1, 0, 0, fm, rate)

	got := pull(t, o, 300)
	maxSlope := 2 * math.Pi * freq * (1 + dev) / rate * 1.05
	for i := 1; i < len(got); i++ {
		if d := math.Abs(got[i] - got[i-1]); d > maxSlope {
			t.Fatalf("jump of %v at sample %d, max slope is %v", d, i, maxSlope)
		}
	}
}

func TestTriangle_PhaseContinuityAcrossFMStep(t *testing.T) {
	t.Parallel()

	const (
		rate = 44100
		freq = 440.0
		dev  = 0.08
	)
	fm := osctest.New(rate, -1, func(sample int) float64 {
		if sample < 50 {
			return 0
		}
		return dev
	})
	o := NewTriangle(freq, 1, 0, 0, fm, rate)

	got := pull(t, o, 300)
	maxSlope := 4 * freq * (1 + dev) / rate * 1.05
	for i := 1; i < len(got); i++ {
		if d := math.Abs(got[i] - got[i-1]); d > maxSlope {
			t.Fatalf("jump of %v at sample %d, max slope is %v", d, i, maxSlope)
		}
	}
}

func TestPulse_PWMSourceControlsDuty(t *testing.T) {
	t.Parallel()

	// 1 Hz at 8 samples/s; the PWM source widens the duty from 25% to
	// 50% on the second cycle
	pwm := osctest.New(8, -1, func(sample int) float64 {
		if sample < 8 {
			return 0.25
		}
		return 0.5
	})
	o := NewFastPulse(1, 1, 0, 0, 0.9, pwm, 8)

	got := pull(t, o, 16)
	for i, v := range got {
		cyclePos := i % 8
		want := -1.0
		if i < 8 && cyclePos < 2 {
			want = 1.0
		}
		if i >= 8 && cyclePos < 4 {
			want = 1.0
		}
		if v != want {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestSine_FMSourceEndEndsStream(t *testing.T) {
	t.Parallel()

	o := NewSine(440, 1, 0, 0, osctest.NewSilent(44100, 5), 44100)
	pull(t, o, 5)

	if _, err := o.NextSample(); !errors.Is(err, io.EOF) {
		t.Errorf("NextSample() error = %v, want io.EOF", err)
	}
}

// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/hemretez/synthesizer/internal/osctest"
)

func rampSource(rate int) *osctest.Osc {
	return osctest.New(rate, -1, func(sample int) float64 {
		return float64(sample)
	})
}

func TestDelay_PositiveEmitsSilenceFirst(t *testing.T) {
	t.Parallel()

	d := NewDelay(rampSource(100), 0.05)
	want := []float64{0, 0, 0, 0, 0, 0, 1, 2, 3}

	got := pull(t, d, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDelay_NegativeSkipsAhead(t *testing.T) {
	t.Parallel()

	// skipped samples are discarded, never emitted
	d := NewDelay(rampSource(100), -0.05)
	want := []float64{5, 6, 7, 8}

	got := pull(t, d, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDelay_SkipPastSourceEnd(t *testing.T) {
	t.Parallel()

	d := NewDelay(osctest.NewConstant(100, 3, 1), -0.05)
	if _, err := d.NextSample(); !errors.Is(err, io.EOF) {
		t.Errorf("NextSample() error = %v, want io.EOF", err)
	}
}

func TestMix_AddsSources(t *testing.T) {
	t.Parallel()

	m := NewMix(osctest.NewConstant(100, -1, 0.25), rampSource(100))
	want := []float64{0.25, 1.25, 2.25, 3.25}

	got := pull(t, m, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMix_EndsWithEitherSource(t *testing.T) {
	t.Parallel()

	m := NewMix(osctest.NewConstant(100, -1, 1), osctest.NewConstant(100, 2, 1))
	pull(t, m, 2)

	if _, err := m.NextSample(); !errors.Is(err, io.EOF) {
		t.Errorf("NextSample() error = %v, want io.EOF", err)
	}
}

func TestAmpModulate_MultipliesSources(t *testing.T) {
	t.Parallel()

	m := NewAmpModulate(rampSource(100), osctest.NewConstant(100, -1, 0.5))
	want := []float64{0, 0.5, 1, 1.5}

	got := pull(t, m, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAbs_RectifiesSource(t *testing.T) {
	t.Parallel()

	src := osctest.New(100, -1, func(sample int) float64 {
		return float64(sample) - 2
	})
	a := NewAbs(src)
	want := []float64{2, 1, 0, 1, 2}

	got := pull(t, a, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClip_BothBounds(t *testing.T) {
	t.Parallel()

	c, err := NewClip(rampSource(100), 1, 3)
	if err != nil {
		t.Fatalf("NewClip() error = %v", err)
	}
	want := []float64{1, 1, 2, 3, 3, 3}

	got := pull(t, c, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClip_OpenBound(t *testing.T) {
	t.Parallel()

	c, err := NewClip(rampSource(100), math.NaN(), 2)
	if err != nil {
		t.Fatalf("NewClip() error = %v", err)
	}
	want := []float64{0, 1, 2, 2, 2}

	got := pull(t, c, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClip_BothBoundsOpenIsError(t *testing.T) {
	t.Parallel()

	if _, err := NewClip(rampSource(100), math.NaN(), math.NaN()); !errors.Is(err, ErrClipBounds) {
		t.Errorf("NewClip() error = %v, want ErrClipBounds", err)
	}
}

func TestMap_AppliesFunction(t *testing.T) {
	t.Parallel()

	m := NewMap(rampSource(100), func(v float64) float64 {
		return v * v
	})
	want := []float64{0, 1, 4, 9, 16}

	got := pull(t, m, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCombinators_Chain(t *testing.T) {
	t.Parallel()

	// delay -> amplitude modulation -> clip, all against the same interface
	var o Oscillator = rampSource(100)
	o = NewDelay(o, 0.02)
	o = NewAmpModulate(o, osctest.NewConstant(100, -1, 2))
	o, err := NewClip(o, math.NaN(), 5)
	if err != nil {
		t.Fatalf("NewClip() error = %v", err)
	}
	want := []float64{0, 0, 0, 2, 4, 5, 5}

	got := pull(t, o, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

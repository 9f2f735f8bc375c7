// SPDX-License-Identifier: EPL-2.0

package synthesizer

import "errors"

var (
	ErrSampleWidth     = errors.New("only sample widths 2 and 4 are supported")
	ErrFrequencyRange  = errors.New("frequency must not exceed half the sample rate")
	ErrAmplitudeRange  = errors.New("amplitude must be between 0 and 1")
	ErrBiasRange       = errors.New("bias must be between -1 and 1")
	ErrPulseWidthRange = errors.New("pulse width must be between 0 and 1")
)

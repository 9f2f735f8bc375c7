// SPDX-License-Identifier: EPL-2.0

package osc

import "errors"

var (
	ErrEnvelopeDuration = errors.New("envelope segment durations must not be negative")
	ErrSustainLevel     = errors.New("sustain level must be between 0 and 1")
	ErrClipBounds       = errors.New("clip needs at least one bound")
)

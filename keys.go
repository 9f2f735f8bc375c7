// SPDX-License-Identifier: EPL-2.0

package synthesizer

import "math"

// A4Frequency is the standard tuning of piano key 49 (the A above middle C).
const A4Frequency = 440.0

// KeyFreq returns the note frequency for the given piano key number in
// standard equal-tempered tuning. C4 is key 40 and A4 is key 49 (440 Hz).
// https://en.wikipedia.org/wiki/Piano_key_frequencies
func KeyFreq(keyNumber int) float64 {
	return KeyFreqTuned(keyNumber, A4Frequency)
}

// KeyFreqTuned is KeyFreq with an explicit A4 reference frequency.
func KeyFreqTuned(keyNumber int, a4 float64) float64 {
	return math.Pow(2, float64(keyNumber-49)/12) * a4
}

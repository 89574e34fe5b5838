package chord

import (
	"math/bits"

	"github.com/jsphweid/chordlab/model"
)

// Matches reports whether the held notes satisfy the target chord.
// Root-position targets only need the right tone set, in any voicing
// and octave. Inverted targets additionally pin the lowest note's pitch
// class to the slash bass.
func Matches(held model.Notes, target model.Chord) bool {
	if len(held) == 0 {
		return false
	}
	heldSet := pcSet(held)
	if bits.OnesCount16(heldSet) < 3 {
		return false
	}
	if heldSet != pcSet(Tones(target)) {
		return false
	}
	if !target.Inverted() {
		return true
	}
	return PitchClass(BassNote(held)) == uint8(target.Bass)
}

package chord

import (
	"math/bits"

	"github.com/jsphweid/chordlab/model"
)

// pcSet packs pitch classes into the low 12 bits of a uint16, which
// makes exact template comparison a single ==.
func pcSet(notes model.Notes) uint16 {
	var mask uint16
	for _, n := range notes {
		mask |= 1 << (n % 12)
	}
	return mask
}

// BassNote returns the lowest sounding note number.
func BassNote(notes model.Notes) uint8 {
	lowest := notes[0]
	for _, n := range notes[1:] {
		if n < lowest {
			lowest = n
		}
	}
	return lowest
}

// Detect names the chord the held notes spell, if any. Fewer than three
// distinct pitch classes is never a chord. Every root/quality template
// is tried for an exact pitch-class match; among matches, a candidate
// that explains the bass as a non-root chord tone wins (and is reported
// as that inversion), then a root-position candidate, then whatever
// matched first.
func Detect(held model.Notes) (model.Chord, bool) {
	var none model.Chord
	if len(held) == 0 {
		return none, false
	}
	heldSet := pcSet(held)
	if bits.OnesCount16(heldSet) < 3 {
		return none, false
	}
	bass := PitchClass(BassNote(held))

	var candidates []model.Chord
	for root := uint8(0); root < 12; root++ {
		for _, id := range QualityIds {
			var mask uint16
			for _, off := range Qualities[id] {
				mask |= 1 << ((root + off) % 12)
			}
			if mask == heldSet {
				candidates = append(candidates, model.Chord{Root: root, Quality: id, Bass: model.NoBass})
			}
		}
	}
	if len(candidates) == 0 {
		return none, false
	}

	for _, c := range candidates {
		if bass != c.Root && hasTone(c, bass) {
			c.Bass = int8(bass)
			return c, true
		}
	}
	for _, c := range candidates {
		if bass == c.Root {
			return c, true
		}
	}
	// bass wasn't a tone of any candidate, which an exact match rules
	// out, but don't crash if the templates ever stop guaranteeing it
	return candidates[0], true
}

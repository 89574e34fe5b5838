package chord

import (
	"strings"

	"github.com/jsphweid/chordlab/model"
)

// PitchClass collapses a note number to its pitch class.
func PitchClass(note uint8) uint8 {
	return note % 12
}

// NoteName returns the sharp-preferred spelling of a pitch class.
func NoteName(pc uint8) string {
	return noteNames[pc%12]
}

// ParseNoteName accepts sharp and flat spellings and normalizes both to
// a pitch class, so enharmonic spelling never leaks into matching.
func ParseNoteName(s string) (uint8, bool) {
	for pc, name := range noteNames {
		if s == name {
			return uint8(pc), true
		}
	}
	if pc, ok := flatNames[s]; ok {
		return pc, true
	}
	return 0, false
}

// Name renders <Root><Suffix>, plus /<Bass> for inversions.
func Name(c model.Chord) string {
	res := NoteName(c.Root) + qualitySuffixes[c.Quality]
	if c.Inverted() && uint8(c.Bass) != c.Root {
		res += "/" + NoteName(uint8(c.Bass))
	}
	return res
}

// Parse is the inverse of Name. It fails on an unknown root or suffix,
// and on a slash bass that is not a chord tone of the parsed quality.
// A bass equal to the root collapses to root position.
func Parse(s string) (model.Chord, bool) {
	var none model.Chord
	c := model.Chord{Bass: model.NoBass}

	name := s
	if i := strings.IndexByte(s, '/'); i >= 0 {
		bass, ok := ParseNoteName(s[i+1:])
		if !ok {
			return none, false
		}
		c.Bass = int8(bass)
		name = s[:i]
	}

	// root is a note letter plus an optional accidental
	rootLen := 1
	if len(name) >= 2 && (name[1] == '#' || name[1] == 'b') {
		rootLen = 2
	}
	if len(name) < rootLen {
		return none, false
	}
	root, ok := ParseNoteName(name[:rootLen])
	if !ok {
		return none, false
	}
	c.Root = root

	suffix := name[rootLen:]
	for _, id := range QualityIds {
		if qualitySuffixes[id] == suffix {
			c.Quality = id
			if c.Inverted() {
				if uint8(c.Bass) == c.Root {
					c.Bass = model.NoBass
				} else if !hasTone(c, uint8(c.Bass)) {
					return none, false
				}
			}
			return c, true
		}
	}
	return none, false
}

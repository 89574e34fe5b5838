package chord

import (
	"sort"

	"github.com/jsphweid/chordlab/model"
)

// DefaultBase puts display voicings in the middle-C octave.
const DefaultBase = uint8(60)

// Tones returns the chord's pitch classes in catalogue order, root
// first, regardless of any inversion.
func Tones(c model.Chord) model.Notes {
	offsets := Qualities[c.Quality]
	res := make(model.Notes, 0, len(offsets))
	for _, off := range offsets {
		res = append(res, (c.Root+off)%12)
	}
	return res
}

func hasTone(c model.Chord, pc uint8) bool {
	for _, t := range Tones(c) {
		if t == pc {
			return true
		}
	}
	return false
}

// Voice lays the chord out as concrete ascending note numbers for
// display or playback. Inverted chords put the bass pitch class lowest
// with every other tone in the octave above it. Root position keeps
// catalogue order, raising a tone by octaves until it clears the
// previous one. A voicing spans at most base+23, so callers keep base
// at or below 104 to stay inside the note range.
func Voice(c model.Chord, base uint8) model.Notes {
	tones := Tones(c)

	if c.Inverted() {
		bassNote := base + uint8(c.Bass)
		rest := make(model.Notes, 0, len(tones)-1)
		for _, t := range tones {
			if t == uint8(c.Bass) {
				continue
			}
			n := base + t
			if n <= bassNote {
				n += 12
			}
			rest = append(rest, n)
		}
		sort.Slice(rest, func(i, j int) bool {
			return rest[i] < rest[j]
		})
		return append(model.Notes{bassNote}, rest...)
	}

	res := make(model.Notes, 0, len(tones))
	var prev uint8
	for i, t := range tones {
		n := base + t
		if i > 0 {
			for n <= prev {
				n += 12
			}
		}
		res = append(res, n)
		prev = n
	}
	return res
}

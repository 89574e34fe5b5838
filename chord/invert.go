package chord

import "github.com/jsphweid/chordlab/model"

// Inversions enumerates the slash-chord variants of a root-position
// chord, one per non-root chord tone in catalogue order. Triads yield
// two, seventh chords three. The root position itself is not included;
// callers union it in when they want the full set.
func Inversions(c model.Chord) []model.Chord {
	tones := Tones(c)
	res := make([]model.Chord, 0, len(tones)-1)
	for _, t := range tones[1:] {
		res = append(res, model.Chord{Root: c.Root, Quality: c.Quality, Bass: int8(t)})
	}
	return res
}

package session

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jsphweid/chordlab/chord"
	"github.com/jsphweid/chordlab/model"
)

// ErrEmptyPool means the config selects no chords at all. Never
// defaulted around: the caller has to fix its selection.
var ErrEmptyPool = errors.New("session config produced an empty chord pool")

func chordTypePool(ids []string) []model.Chord {
	var res []model.Chord
	for _, id := range ids {
		if _, ok := chord.Qualities[id]; !ok {
			continue
		}
		// every selectable spelling is its own entry here; dedupe
		// collapses the enharmonic doubles afterwards
		for _, root := range chord.RootSpellings {
			res = append(res, model.Chord{Root: root.Pc, Quality: id, Bass: model.NoBass})
		}
	}
	return res
}

func scalePool(scaleRoots []uint8) []model.Chord {
	var res []model.Chord
	for _, scaleRoot := range scaleRoots {
		for i, off := range chord.ScaleOffsets {
			quality := chord.DegreeQualities[i]
			// NOTE: a degree is admitted by checking its natural triad
			// quality against the catalogue, not against the session's
			// selected chord types, so selected seventh qualities never
			// surface in scale mode. Matches the app's behavior to the
			// letter; changing it changes what sessions contain.
			if _, ok := chord.Qualities[quality]; !ok {
				continue
			}
			res = append(res, model.Chord{
				Root:    (scaleRoot%12 + off) % 12,
				Quality: quality,
				Bass:    model.NoBass,
			})
		}
	}
	return res
}

func dedupe(pool []model.Chord) []model.Chord {
	seen := make(map[model.Chord]bool)
	res := make([]model.Chord, 0, len(pool))
	for _, c := range pool {
		if !seen[c] {
			seen[c] = true
			res = append(res, c)
		}
	}
	return res
}

// Generate draws the session's chord sequence: build the pool for the
// config, optionally widen it with inversions, then draw ChordCount
// entries uniformly with replacement. Repeats across a session are
// expected. The caller owns the rng and may seed it for reproducibility.
func Generate(cfg model.SessionConfig, rng *rand.Rand) ([]model.Chord, error) {
	var pool []model.Chord
	switch cfg.Mode {
	case model.ModeChordTypes:
		pool = chordTypePool(cfg.ChordTypeIds)
	case model.ModeScales:
		pool = scalePool(cfg.ScaleRoots)
	default:
		return nil, fmt.Errorf("unknown session mode: %v", cfg.Mode)
	}
	pool = dedupe(pool)

	if cfg.IncludeInversions {
		widened := make([]model.Chord, 0, len(pool)*4)
		for _, c := range pool {
			widened = append(widened, c)
			widened = append(widened, chord.Inversions(c)...)
		}
		pool = widened
	}

	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	res := make([]model.Chord, 0, cfg.ChordCount)
	for i := 0; i < cfg.ChordCount; i++ {
		res = append(res, pool[rng.Intn(len(pool))])
	}
	return res, nil
}

package model

// Notes is a list of absolute note numbers (0-127).
type Notes = []uint8

// HeldNotes tracks which note numbers are currently sounding.
type HeldNotes = map[uint8]bool

// NoBass marks a chord in root position.
const NoBass = int8(-1)

// Chord identifies a chord by root pitch class and catalogue quality.
// Bass is the inversion's bass pitch class, or NoBass for root position.
// Kept comparable so pool dedupe can use it as a map key.
type Chord struct {
	Root    uint8
	Quality string
	Bass    int8
}

func (c Chord) Inverted() bool {
	return c.Bass != NoBass
}

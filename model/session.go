package model

const (
	ModeChordTypes = "chordTypes"
	ModeScales     = "scales"
)

// SessionConfig is what the session orchestrator hands over at session
// start. In chordTypes mode ChordTypeIds drives the pool, in scales mode
// ScaleRoots does.
type SessionConfig struct {
	ChordCount        int
	Mode              string
	ChordTypeIds      []string
	ScaleRoots        []uint8
	IncludeInversions bool
}

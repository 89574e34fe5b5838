package chord

// QualityIds fixes the catalogue enumeration order so detection
// candidates always come out the same way.
var QualityIds = []string{"maj", "min", "dim", "maj7", "min7", "dom7", "m7b5"}

// Qualities maps a quality id to its semitone offsets from the root.
// Offsets are ascending and always start at 0.
var Qualities = map[string][]uint8{
	"maj":  {0, 4, 7},
	"min":  {0, 3, 7},
	"dim":  {0, 3, 6},
	"maj7": {0, 4, 7, 11},
	"min7": {0, 3, 7, 10},
	"dom7": {0, 4, 7, 10},
	"m7b5": {0, 3, 6, 10},
}

// display suffix per quality, maj renders bare
var qualitySuffixes = map[string]string{
	"maj":  "",
	"min":  "m",
	"dim":  "dim",
	"maj7": "maj7",
	"min7": "m7",
	"dom7": "7",
	"m7b5": "m7b5",
}

// sharp-preferred spellings, indexed by pitch class
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flat spellings accepted on input
var flatNames = map[string]uint8{"Db": 1, "Eb": 3, "Gb": 6, "Ab": 8, "Bb": 10}

// RootSpelling is one selectable spelling of a chromatic root. Session
// pools treat sharp and flat variants as separate entries before dedupe.
type RootSpelling struct {
	Name string
	Pc   uint8
}

var RootSpellings = []RootSpelling{
	{"C", 0},
	{"C#", 1}, {"Db", 1},
	{"D", 2},
	{"D#", 3}, {"Eb", 3},
	{"E", 4},
	{"F", 5},
	{"F#", 6}, {"Gb", 6},
	{"G", 7},
	{"G#", 8}, {"Ab", 8},
	{"A", 9},
	{"A#", 10}, {"Bb", 10},
	{"B", 11},
}

// Major-scale template: degree offsets from the scale root and the
// natural triad quality of each degree (I..VII).
var ScaleOffsets = [7]uint8{0, 2, 4, 5, 7, 9, 11}

var DegreeQualities = [7]string{"maj", "min", "min", "maj", "maj", "min", "dim"}

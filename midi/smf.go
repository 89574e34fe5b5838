package midi

import (
	"github.com/jsphweid/chordlab/model"
	"github.com/jsphweid/chordlab/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

// DefaultHoldTicks holds an exported voicing for a whole note.
const DefaultHoldTicks = ticksPerQuarter * 4

// VoicingSMF wraps a voiced chord in a one-track SMF so the audio layer
// can play or export it. All notes start together and hold for the
// given number of ticks.
func VoicingSMF(notes model.Notes, ticks uint32, velocity uint8) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	vel := util.Min(velocity, 127)

	var track smf.Track
	for _, n := range notes {
		track.Add(0, gomidi.NoteOn(0, n, vel))
	}
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = ticks
		}
		track.Add(delta, gomidi.NoteOff(0, n))
	}
	track.Close(0)
	res.Tracks = append(res.Tracks, track)
	return &res
}

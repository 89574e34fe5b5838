package midi

import (
	"testing"

	"github.com/jsphweid/chordlab/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestVoicingSMFEvents(t *testing.T) {
	s := VoicingSMF(model.Notes{60, 64, 67}, 960, 100)

	assert := assert.New(t)
	assert.Equal(smf.MetricTicks(ticksPerQuarter), s.TimeFormat)
	assert.Len(s.Tracks, 1)

	track := s.Tracks[0]
	// three note ons, three note offs, end of track
	assert.Len(track, 7)

	var ch, key, vel uint8
	for i, want := range []uint8{60, 64, 67} {
		assert.True(track[i].Message.GetNoteOn(&ch, &key, &vel))
		assert.Equal(uint32(0), track[i].Delta)
		assert.Equal(want, key)
		assert.Equal(uint8(100), vel)
	}

	// the hold lives on the first note off, the rest land together
	assert.True(track[3].Message.GetNoteOff(&ch, &key, &vel))
	assert.Equal(uint32(960), track[3].Delta)
	assert.Equal(uint8(60), key)
	for i, want := range []uint8{64, 67} {
		assert.True(track[4+i].Message.GetNoteOff(&ch, &key, &vel))
		assert.Equal(uint32(0), track[4+i].Delta)
		assert.Equal(want, key)
	}
}

func TestVoicingSMFClampsVelocity(t *testing.T) {
	s := VoicingSMF(model.Notes{60}, 10, 200)

	var ch, key, vel uint8
	assert := assert.New(t)
	assert.True(s.Tracks[0][0].Message.GetNoteOn(&ch, &key, &vel))
	assert.Equal(uint8(127), vel)
}

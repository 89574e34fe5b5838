package midi

import (
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordlab/model"
	"github.com/jsphweid/chordlab/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

// Listen watches a MIDI in port and calls onChange with a snapshot of
// the currently-held notes after every note start/end. Snapshots are
// debounced so a chord rolled in over a few milliseconds lands as one
// change instead of one per finger.
//
// The returned func stops listening; call CloseDriver once all
// listeners are done.
func Listen(portNum int, onChange func(model.Notes)) (func(), error) {
	in, err := gomidi.InPort(portNum)
	if err != nil {
		return nil, err
	}

	held := make(model.HeldNotes)
	debounced := debounce.New(30 * time.Millisecond)

	emit := func() {
		// copy before handing off, the map keeps mutating
		notes := util.GetKeys(held)
		debounced(func() {
			onChange(notes)
		})
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held[key] = true
			emit()
		case msg.GetNoteEnd(&ch, &key):
			delete(held, key)
			emit()
		default:
			// ignore
		}
	})
	if err != nil {
		return nil, err
	}
	return stop, nil
}

func CloseDriver() {
	gomidi.CloseDriver()
}

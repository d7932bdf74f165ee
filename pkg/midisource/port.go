package midisource

import (
	"github.com/pkg/errors"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/capture"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register the rtmidi driver
)

// InPorts lists the names of the available MIDI input ports.
func InPorts() []string {
	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListenPort subscribes to the named MIDI input port and feeds its note
// events into sink; the returned function stops listening. A note-on with
// velocity 0 is delivered as a note-off, per MIDI convention. Messages other
// than note-on/note-off are not consumed.
func ListenPort(name string, sink capture.Sink) (func(), error) {
	in, err := midi.FindInPort(name)
	if err != nil {
		return nil, errors.Wrapf(err, "no such input port: %s", name)
	}
	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		var channel, key, velocity uint8
		switch {
		case msg.GetNoteOn(&channel, &key, &velocity):
			if velocity == 0 {
				sink.OnNoteOff(key, velocity)
				return
			}
			sink.OnNoteOn(key, velocity)
		case msg.GetNoteOff(&channel, &key, &velocity):
			sink.OnNoteOff(key, velocity)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "listen issue")
	}
	return stop, nil
}

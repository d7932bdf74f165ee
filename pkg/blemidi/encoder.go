package blemidi

import "github.com/silabs-GiangN/midi-in-to-ble/pkg/models"

// Encode builds the 5-byte BLE-MIDI notification payload for one note event.
// The embedded timestamp is the low 13 bits of nowMillis; it wraps every
// 8192 ms, which BLE-MIDI clients tolerate via delta heuristics. Note and
// velocity are copied verbatim (inputs are 0-127 by upstream contract).
// The function is pure and total over byte inputs.
func Encode(kind models.NoteKind, note, velocity byte, nowMillis uint32) Packet {
	t := uint16(nowMillis & 0x1FFF)
	status := byte(StatusNoteOn)
	if kind == models.NoteOff {
		status = StatusNoteOff
	}
	var p Packet
	p[headerOffset] = markerBit | byte(t>>7)
	p[timestampLowOffset] = markerBit | byte(t)&timestampLowMask
	p[statusOffset] = status
	p[noteOffset] = note
	p[velocityOffset] = velocity
	return p
}

// EncodeEvent encodes a captured note event.
func EncodeEvent(ev models.NoteEvent, nowMillis uint32) Packet {
	return Encode(ev.Kind, ev.Pitch, ev.Velocity, nowMillis)
}

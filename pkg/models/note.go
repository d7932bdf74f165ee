package models

// NoteKind is an enum for the two MIDI note message types carried over BLE
type NoteKind int

const (
	// NoteOn indicates a key press (MIDI status 0x90)
	NoteOn NoteKind = iota
	// NoteOff indicates a key release (MIDI status 0x80)
	NoteOff
)

func (k NoteKind) String() string {
	return []string{"NoteOn", "NoteOff"}[k]
}

// NoteEvent is a single captured note trigger. It is produced by an input
// source and consumed exactly once by the encoder; it is not retained after
// encoding.
type NoteEvent struct {
	Pitch    byte
	Velocity byte
	Kind     NoteKind
}

package capture

import "github.com/silabs-GiangN/midi-in-to-ble/pkg/models"

// Sink is the producer side of a note handoff. Implementations must be
// callable from interrupt-style contexts: non-blocking, no allocation, no
// calls into other components.
type Sink interface {
	OnNoteOn(pitch, velocity byte)
	OnNoteOff(pitch, velocity byte)
}

// Pending is the consumer side, drained from the scheduling loop only.
type Pending interface {
	PollPending() (models.NoteEvent, bool)
}

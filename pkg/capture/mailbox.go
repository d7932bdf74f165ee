package capture

import (
	"sync/atomic"

	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
)

// slot layout: bit 16 = pending, bits 15..8 = pitch, bits 7..0 = velocity.
// Flag and payload travel in one word so the consumer never sees a torn event.
const pendingFlag = 1 << 16

// Mailbox is a lock-free single-slot handoff between an asynchronous note
// producer and the scheduling loop, with one slot per note kind. A producer
// call performs exactly one atomic store; if the previous event of the same
// kind has not been consumed yet it is silently overwritten (last-write-wins,
// no queueing). That loss policy fits a demonstration button; sources that
// need delivery accounting should use Queue instead.
type Mailbox struct {
	on  atomic.Uint32
	off atomic.Uint32
}

func pack(pitch, velocity byte) uint32 {
	return pendingFlag | uint32(pitch)<<8 | uint32(velocity)
}

// OnNoteOn records a pending note-on. Safe from any goroutine or callback.
func (m *Mailbox) OnNoteOn(pitch, velocity byte) {
	m.on.Store(pack(pitch, velocity))
}

// OnNoteOff records a pending note-off. Safe from any goroutine or callback.
func (m *Mailbox) OnNoteOff(pitch, velocity byte) {
	m.off.Store(pack(pitch, velocity))
}

// PollPending pops the next pending event, draining note-ons before
// note-offs. Call from the scheduling loop only.
func (m *Mailbox) PollPending() (models.NoteEvent, bool) {
	if v := m.on.Swap(0); v&pendingFlag != 0 {
		return unpack(v, models.NoteOn), true
	}
	if v := m.off.Swap(0); v&pendingFlag != 0 {
		return unpack(v, models.NoteOff), true
	}
	return models.NoteEvent{}, false
}

func unpack(v uint32, kind models.NoteKind) models.NoteEvent {
	return models.NoteEvent{Pitch: byte(v >> 8), Velocity: byte(v), Kind: kind}
}

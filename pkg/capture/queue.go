package capture

import (
	"sync/atomic"

	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
)

// Queue is a bounded alternative to Mailbox for note sources that need
// delivery accounting: when the queue is full, new events are dropped and
// counted instead of overwriting pending ones.
type Queue struct {
	ch      chan models.NoteEvent
	dropped atomic.Uint32
}

// NewQueue makes a queue holding up to capacity pending events.
func NewQueue(capacity int) *Queue {
	return &Queue{ch: make(chan models.NoteEvent, capacity)}
}

func (q *Queue) OnNoteOn(pitch, velocity byte) {
	q.push(models.NoteEvent{Pitch: pitch, Velocity: velocity, Kind: models.NoteOn})
}

func (q *Queue) OnNoteOff(pitch, velocity byte) {
	q.push(models.NoteEvent{Pitch: pitch, Velocity: velocity, Kind: models.NoteOff})
}

func (q *Queue) push(ev models.NoteEvent) {
	select {
	case q.ch <- ev:
	default:
		q.dropped.Add(1)
	}
}

// PollPending pops the oldest pending event.
func (q *Queue) PollPending() (models.NoteEvent, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return models.NoteEvent{}, false
	}
}

// Dropped returns how many events were lost to a full queue.
func (q *Queue) Dropped() uint32 {
	return q.dropped.Load()
}

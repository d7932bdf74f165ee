package server

import (
	"context"
	"time"

	"github.com/silabs-GiangN/midi-in-to-ble/pkg/blemidi"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/capture"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
)

// PollInterval is the scheduling period of the main loop's note drain.
const PollInterval = time.Millisecond

// Run drives the cooperative loop: lifecycle events and pending note events
// are both handled on this goroutine, so state transitions never race a
// send. Every note pending before a tick is drained within that tick. Fatal
// setup failures abort the loop; transient failures are logged and absorbed.
func (s *BLEMIDIServer) Run(ctx context.Context, events <-chan models.LifecycleEvent, pending capture.Pending) error {
	notifier := NewNotifier(s)
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if err := s.HandleEvent(ev); err != nil {
				return err
			}
		case <-ticker.C:
			s.pump(notifier, pending)
		}
	}
}

// pump drains every pending note event. While no peer is attached the events
// are discarded: stale notes must not fire on a later connect.
func (s *BLEMIDIServer) pump(notifier *Notifier, pending capture.Pending) {
	for {
		ev, ok := pending.PollPending()
		if !ok {
			return
		}
		if s.state != models.Connected {
			continue
		}
		packet := blemidi.EncodeEvent(ev, s.clock.NowMillis())
		if err := notifier.Send(packet); err != nil {
			s.log.WithError(err).WithField("note", ev.Pitch).Warn("dropping note event")
		}
	}
}

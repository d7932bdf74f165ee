package server

import (
	"testing"

	"github.com/silabs-GiangN/midi-in-to-ble/internal"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/blemidi"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/capture"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
	"gotest.tools/assert"
)

func TestSendWhileAdvertisingIsRefused(t *testing.T) {
	r := internal.NewDummyRadio()
	srv := getTestServer(r, nil)
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	notifier := NewNotifier(srv)
	err := notifier.Send(blemidi.Encode(models.NoteOn, 60, 100, 0))
	assert.Equal(t, err, ErrNotConnected)
	// the external primitive is never touched with a stale handle
	assert.Equal(t, len(r.Notifications), 0)
}

func TestSendDeliversPayloadToPeer(t *testing.T) {
	r := internal.NewDummyRadio()
	srv := getTestServer(r, nil)
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	assert.NilError(t, srv.HandleEvent(models.ConnectionOpenedEvent{Handle: 3}))
	notifier := NewNotifier(srv)
	assert.NilError(t, notifier.Send(blemidi.Encode(models.NoteOn, 60, 100, 1000)))
	assert.Equal(t, len(r.Notifications), 1)
	assert.DeepEqual(t, r.Notifications[0], []byte{0x87, 0xA8, 0x90, 60, 100})
	assert.DeepEqual(t, r.NotifiedConns, []models.ConnectionHandle{3})
	assert.DeepEqual(t, r.NotifiedChars, []models.CharacteristicHandle{testMIDIChar})
}

func TestPumpDiscardsWhileDisconnected(t *testing.T) {
	r := internal.NewDummyRadio()
	srv := getTestServer(r, nil)
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	mailbox := &capture.Mailbox{}
	mailbox.OnNoteOn(60, 100)
	srv.pump(NewNotifier(srv), mailbox)
	assert.Equal(t, len(r.Notifications), 0)
	_, ok := mailbox.PollPending()
	assert.Assert(t, !ok)
}

func TestPumpEncodesPendingEvents(t *testing.T) {
	r := internal.NewDummyRadio()
	srv := getTestServer(r, nil)
	srv.clock = &internal.FixedClock{Millis: 1000}
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	assert.NilError(t, srv.HandleEvent(models.ConnectionOpenedEvent{Handle: 0}))
	mailbox := &capture.Mailbox{}
	mailbox.OnNoteOn(60, 100)
	mailbox.OnNoteOff(60, 0)
	srv.pump(NewNotifier(srv), mailbox)
	assert.Equal(t, len(r.Notifications), 2)
	assert.DeepEqual(t, r.Notifications[0], []byte{0x87, 0xA8, 0x90, 60, 100})
	assert.DeepEqual(t, r.Notifications[1], []byte{0x87, 0xA8, 0x80, 60, 0})
}

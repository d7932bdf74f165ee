package server

import (
	"github.com/pkg/errors"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/blemidi"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
)

// ErrNotConnected is returned when a send is attempted without an attached
// peer. Compare with errors.Cause.
var ErrNotConnected = errors.New("no peer connected")

// Notifier delivers encoded packets to the attached peer. It reads the
// server's connection state but never mutates it.
type Notifier struct {
	server *BLEMIDIServer
}

// NewNotifier is the struct init method for Notifier.
func NewNotifier(server *BLEMIDIServer) *Notifier {
	return &Notifier{server: server}
}

// Send pushes one packet through the radio's notification primitive. Unless
// a peer is attached and its handle is valid it refuses with ErrNotConnected;
// the primitive is never called with the sentinel handle. Delivery is
// fire-and-forget: confirmation is the radio stack's responsibility.
func (n *Notifier) Send(p blemidi.Packet) error {
	srv := n.server
	if srv.State() != models.Connected || srv.Connection() == models.NoConnection {
		return ErrNotConnected
	}
	err := srv.radio.SendNotification(srv.Connection(), srv.midiChar, p.Bytes())
	return errors.Wrap(err, "send notification issue")
}

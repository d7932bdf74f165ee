package internal

import "github.com/silabs-GiangN/midi-in-to-ble/pkg/models"

// FixedClock is a millisecond clock whose reading is set by the test.
type FixedClock struct {
	Millis uint32
}

func (c *FixedClock) NowMillis() uint32 { return c.Millis }

// RecordingListener captures lifecycle callbacks for assertions.
type RecordingListener struct {
	AdvertisingCount int
	Connected        []models.ConnectionHandle
	DisconnectCount  int
}

func (l *RecordingListener) OnAdvertising() { l.AdvertisingCount++ }

func (l *RecordingListener) OnConnected(h models.ConnectionHandle) {
	l.Connected = append(l.Connected, h)
}

func (l *RecordingListener) OnDisconnected() { l.DisconnectCount++ }

// RecordingSink captures produced note events for assertions.
type RecordingSink struct {
	Events []models.NoteEvent
}

func (s *RecordingSink) OnNoteOn(pitch, velocity byte) {
	s.Events = append(s.Events, models.NoteEvent{Pitch: pitch, Velocity: velocity, Kind: models.NoteOn})
}

func (s *RecordingSink) OnNoteOff(pitch, velocity byte) {
	s.Events = append(s.Events, models.NoteEvent{Pitch: pitch, Velocity: velocity, Kind: models.NoteOff})
}

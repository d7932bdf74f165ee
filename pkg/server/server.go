package server

import (
	"github.com/pkg/errors"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/radio"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/util"
	"github.com/sirupsen/logrus"
)

// BLEMIDIServer owns the connection lifecycle of the device: it reacts to
// radio-stack lifecycle events, configures and re-arms advertising, and holds
// the handle of the attached peer. State and handle are mutated here only;
// collaborators read them through the accessors. All methods run on the
// single scheduling goroutine.
type BLEMIDIServer struct {
	radio         radio.Radio
	midiChar      models.CharacteristicHandle
	state         models.ConnectionState
	conn          models.ConnectionHandle
	advSet        models.AdvertiserHandle
	advSetCreated bool
	clock         Clock
	listener      models.ConnectionListener
	log           logrus.FieldLogger
}

// NewBLEMIDIServer is the struct init method for BLEMIDIServer. A nil
// listener and a nil logger fall back to no-op and the standard logger.
func NewBLEMIDIServer(r radio.Radio, midiChar models.CharacteristicHandle, listener models.ConnectionListener, log logrus.FieldLogger) *BLEMIDIServer {
	if listener == nil {
		listener = noopListener{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &BLEMIDIServer{
		radio:    r,
		midiChar: midiChar,
		state:    models.Idle,
		conn:     models.NoConnection,
		clock:    NewMonotonicClock(),
		listener: listener,
		log:      log,
	}
}

// State returns the current lifecycle state
func (s *BLEMIDIServer) State() models.ConnectionState {
	return s.state
}

// Connection returns the attached peer's handle, or models.NoConnection
func (s *BLEMIDIServer) Connection() models.ConnectionHandle {
	return s.conn
}

// HandleEvent dispatches one radio lifecycle event through the state machine.
// A non-nil error means a fatal setup failure; transient operational failures
// are logged and absorbed.
func (s *BLEMIDIServer) HandleEvent(ev models.LifecycleEvent) error {
	return ev.Apply(s)
}

// VisitBoot performs the one-time advertising set creation and timing
// configuration, then starts advertising. The creation guard keeps a repeated
// boot event from allocating a second set.
func (s *BLEMIDIServer) VisitBoot() error {
	if !s.advSetCreated {
		set, err := s.radio.CreateAdvertisingSet()
		if err != nil {
			return errors.Wrap(err, "create advertising set issue")
		}
		s.advSet = set
		s.advSetCreated = true
		err = s.radio.SetAdvertisingTiming(set, util.AdvertisingIntervalTicks, util.AdvertisingIntervalTicks, 0, 0)
		if err != nil {
			return errors.Wrap(err, "advertising timing issue")
		}
	}
	if err := s.startAdvertising(); err != nil {
		return errors.Wrap(err, "initial advertising issue")
	}
	s.state = models.Advertising
	s.listener.OnAdvertising()
	return nil
}

// VisitConnectionOpened stores the peer handle and enters Connected.
func (s *BLEMIDIServer) VisitConnectionOpened(h models.ConnectionHandle) error {
	if s.state != models.Advertising {
		s.log.WithField("state", s.state.String()).Warn("connection opened in unexpected state")
	}
	s.conn = h
	s.state = models.Connected
	s.listener.OnConnected(h)
	return nil
}

// VisitConnectionClosed clears the peer handle and re-arms advertising. A
// restart failure is retried with backoff and, if it still fails, logged:
// the machine stays responsive to future lifecycle events either way.
func (s *BLEMIDIServer) VisitConnectionClosed() error {
	s.conn = models.NoConnection
	s.listener.OnDisconnected()
	err := retryWithBackoff(restartAttempts, restartBaseDelay, s.startAdvertising)
	if err != nil {
		s.log.WithError(err).Warn("could not restart advertising")
	}
	s.state = models.Advertising
	s.listener.OnAdvertising()
	return nil
}

// VisitOther absorbs vendor events the core does not act on.
func (s *BLEMIDIServer) VisitOther(code uint32) error {
	s.log.WithField("event", code).Debug("ignoring radio event")
	return nil
}

// startAdvertising regenerates the advertising data and starts broadcasting.
func (s *BLEMIDIServer) startAdvertising() error {
	err := s.radio.GenerateAdvertisingData(s.advSet, radio.GeneralDiscoverable)
	if err != nil {
		return errors.Wrap(err, "generate advertising data issue")
	}
	err = s.radio.StartAdvertising(s.advSet, radio.ConnectableScannable)
	return errors.Wrap(err, "start advertising issue")
}

type noopListener struct{}

func (noopListener) OnAdvertising()                      {}
func (noopListener) OnConnected(models.ConnectionHandle) {}
func (noopListener) OnDisconnected()                     {}

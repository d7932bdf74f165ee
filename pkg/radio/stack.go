package radio

import (
	"time"

	"github.com/pkg/errors"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/blemidi"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/util"
	"tinygo.org/x/bluetooth"
)

const enableTimeout = 10 * time.Second

// midiCharacteristicHandle is the handle this attribute-table layout assigns
// to the BLE-MIDI characteristic.
const midiCharacteristicHandle models.CharacteristicHandle = 0x0014

var errNoAdvertisingSet = errors.New("advertising set has not been created")

// Stack implements Radio on tinygo.org/x/bluetooth. Boot enables the
// adapter, commits the attribute table and wires the stack's connect handler
// into the lifecycle event channel consumed by the scheduling loop.
type Stack struct {
	adapter       *bluetooth.Adapter
	adv           *bluetooth.Advertisement
	midiChar      bluetooth.Characteristic
	localName     string
	intervalTicks uint32
	events        chan models.LifecycleEvent
	created       bool
	nextConn      models.ConnectionHandle
}

// NewStack makes a stack advertising under the given local name.
func NewStack(localName string) *Stack {
	if localName == "" {
		localName = util.DefaultDeviceName
	}
	return &Stack{
		adapter:       bluetooth.DefaultAdapter,
		localName:     localName,
		intervalTicks: util.AdvertisingIntervalTicks,
		events:        make(chan models.LifecycleEvent, 8),
	}
}

// Events delivers the stack lifecycle: one BootEvent after a successful
// Boot, then ConnectionOpened/ConnectionClosed events as peers come and go.
func (s *Stack) Events() <-chan models.LifecycleEvent {
	return s.events
}

// MIDICharacteristic returns the attribute-table handle of the BLE-MIDI
// characteristic committed by Boot.
func (s *Stack) MIDICharacteristic() models.CharacteristicHandle {
	return midiCharacteristicHandle
}

// Boot enables the adapter, builds the attribute table and registers the
// connect handler. Call exactly once, before the scheduling loop starts. Any
// failure here is fatal: no degraded mode exists without an attribute table.
func (s *Stack) Boot() error {
	err := util.Timeout("enable BLE stack", s.adapter.Enable, enableTimeout)
	if err != nil {
		return errors.Wrap(err, "adapter enable issue")
	}
	if err := s.addAttributeTable(); err != nil {
		return errors.Wrap(err, "attribute table issue")
	}
	s.adapter.SetConnectHandler(func(_ bluetooth.Device, connected bool) {
		if connected {
			s.events <- models.ConnectionOpenedEvent{Handle: s.issueHandle()}
			return
		}
		s.events <- models.ConnectionClosedEvent{}
	})
	s.events <- models.BootEvent{}
	return nil
}

// issueHandle hands out connection handles, skipping the sentinel value.
func (s *Stack) issueHandle() models.ConnectionHandle {
	h := s.nextConn
	s.nextConn++
	if s.nextConn == models.NoConnection {
		s.nextConn = 0
	}
	return h
}

func (s *Stack) addAttributeTable() error {
	nameService := &bluetooth.Service{
		UUID: bluetooth.New16BitUUID(0x1800), // Generic Access
		Characteristics: []bluetooth.CharacteristicConfig{
			{
				UUID:  bluetooth.New16BitUUID(0x2A00), // Device Name
				Value: []byte(s.localName),
				Flags: bluetooth.CharacteristicReadPermission,
			},
		},
	}
	if err := s.adapter.AddService(nameService); err != nil {
		return errors.Wrap(err, "device name service issue")
	}
	midiService := &bluetooth.Service{
		UUID: util.MustParseUUID(util.MIDIServiceUUID),
		Characteristics: []bluetooth.CharacteristicConfig{
			{
				Handle: &s.midiChar,
				UUID:   util.MustParseUUID(util.MIDICharUUID),
				Value:  make([]byte, blemidi.PacketLength),
				Flags: bluetooth.CharacteristicReadPermission |
					bluetooth.CharacteristicWriteWithoutResponsePermission |
					bluetooth.CharacteristicNotifyPermission,
			},
		},
	}
	return errors.Wrap(s.adapter.AddService(midiService), "midi service issue")
}

func (s *Stack) CreateAdvertisingSet() (models.AdvertiserHandle, error) {
	if s.created {
		return 0, errors.New("advertising set already created")
	}
	s.adv = s.adapter.DefaultAdvertisement()
	s.created = true
	return 0, nil
}

func (s *Stack) SetAdvertisingTiming(_ models.AdvertiserHandle, minTicks, maxTicks uint32, duration uint16, maxEvents uint8) error {
	if s.adv == nil {
		return errNoAdvertisingSet
	}
	if duration != 0 || maxEvents != 0 {
		return errors.New("advertising duration and event caps are not supported")
	}
	if minTicks == 0 || maxTicks < minTicks {
		return errors.Errorf("invalid advertising interval range: %d..%d", minTicks, maxTicks)
	}
	// the host stack exposes a single interval; the minimum is used
	s.intervalTicks = minTicks
	return nil
}

func (s *Stack) GenerateAdvertisingData(_ models.AdvertiserHandle, mode DiscoverableMode) error {
	if s.adv == nil {
		return errNoAdvertisingSet
	}
	options := bluetooth.AdvertisementOptions{
		Interval:     bluetooth.Duration(s.intervalTicks),
		ServiceUUIDs: []bluetooth.UUID{util.MustParseUUID(util.MIDIServiceUUID)},
	}
	if mode == GeneralDiscoverable {
		options.LocalName = s.localName
	}
	return errors.Wrap(s.adv.Configure(options), "configure advertisement issue")
}

func (s *Stack) StartAdvertising(_ models.AdvertiserHandle, mode ConnectableMode) error {
	if s.adv == nil {
		return errNoAdvertisingSet
	}
	if mode == NonConnectable {
		return errors.New("non-connectable advertising is not supported")
	}
	return errors.Wrap(s.adv.Start(), "start advertisement issue")
}

func (s *Stack) SendNotification(conn models.ConnectionHandle, char models.CharacteristicHandle, payload []byte) error {
	if conn == models.NoConnection {
		return errors.New("invalid connection handle")
	}
	if char != midiCharacteristicHandle {
		return errors.Errorf("unknown characteristic handle: 0x%04X", uint16(char))
	}
	_, err := s.midiChar.Write(payload)
	return errors.Wrap(err, "notification write issue")
}

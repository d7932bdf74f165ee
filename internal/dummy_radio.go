package internal

import (
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/radio"
)

// DummyRadio records every primitive call and can be scripted to fail.
type DummyRadio struct {
	CreateCalls   int
	TimingCalls   int
	GenerateCalls int
	StartCalls    int

	Notifications [][]byte
	NotifiedConns []models.ConnectionHandle
	NotifiedChars []models.CharacteristicHandle

	CreateErr   error
	TimingErr   error
	GenerateErr error
	StartErr    error
	SendErr     error

	Handle models.AdvertiserHandle
}

func NewDummyRadio() *DummyRadio {
	return &DummyRadio{}
}

func (r *DummyRadio) CreateAdvertisingSet() (models.AdvertiserHandle, error) {
	r.CreateCalls++
	if r.CreateErr != nil {
		return 0, r.CreateErr
	}
	return r.Handle, nil
}

func (r *DummyRadio) SetAdvertisingTiming(_ models.AdvertiserHandle, _, _ uint32, _ uint16, _ uint8) error {
	r.TimingCalls++
	return r.TimingErr
}

func (r *DummyRadio) GenerateAdvertisingData(_ models.AdvertiserHandle, _ radio.DiscoverableMode) error {
	r.GenerateCalls++
	return r.GenerateErr
}

func (r *DummyRadio) StartAdvertising(_ models.AdvertiserHandle, _ radio.ConnectableMode) error {
	r.StartCalls++
	return r.StartErr
}

func (r *DummyRadio) SendNotification(conn models.ConnectionHandle, char models.CharacteristicHandle, payload []byte) error {
	if r.SendErr != nil {
		return r.SendErr
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	r.Notifications = append(r.Notifications, buf)
	r.NotifiedConns = append(r.NotifiedConns, conn)
	r.NotifiedChars = append(r.NotifiedChars, char)
	return nil
}

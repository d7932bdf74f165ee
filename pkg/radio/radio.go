package radio

import "github.com/silabs-GiangN/midi-in-to-ble/pkg/models"

// DiscoverableMode selects how the advertising data marks the device
type DiscoverableMode int

const (
	// GeneralDiscoverable makes the device visible to any scanning central
	GeneralDiscoverable DiscoverableMode = iota
	// NonDiscoverable broadcasts without discovery flags
	NonDiscoverable
)

// ConnectableMode selects whether a central may attach to the advertiser
type ConnectableMode int

const (
	// ConnectableScannable accepts both connections and scan requests
	ConnectableScannable ConnectableMode = iota
	// NonConnectable broadcasts only
	NonConnectable
)

// Radio is the set of radio-stack primitives the connection manager consumes.
// Implementations are not required to be goroutine safe; every call is made
// from the single scheduling goroutine.
type Radio interface {
	// CreateAdvertisingSet allocates the advertising set. At most one call
	// per process succeeds.
	CreateAdvertisingSet() (models.AdvertiserHandle, error)
	// SetAdvertisingTiming configures intervals in 0.625 ms ticks. A zero
	// duration means no time limit and zero maxEvents means no event cap.
	SetAdvertisingTiming(set models.AdvertiserHandle, minTicks, maxTicks uint32, duration uint16, maxEvents uint8) error
	// GenerateAdvertisingData rebuilds the advertising payload.
	GenerateAdvertisingData(set models.AdvertiserHandle, mode DiscoverableMode) error
	// StartAdvertising begins broadcasting a previously generated payload.
	StartAdvertising(set models.AdvertiserHandle, mode ConnectableMode) error
	// SendNotification pushes payload to the subscribed peer through the
	// given characteristic.
	SendNotification(conn models.ConnectionHandle, char models.CharacteristicHandle, payload []byte) error
}

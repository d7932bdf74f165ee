package models

// ConnectionState is an enum for all possible lifecycle states of the device
type ConnectionState int

const (
	// Idle indicates the radio stack has not booted yet
	Idle ConnectionState = iota
	// Advertising indicates no peer is attached and the device is broadcasting
	Advertising
	// Connected indicates a peer is attached and its handle is valid
	Connected
)

func (s ConnectionState) String() string {
	return []string{"Idle", "Advertising", "Connected"}[s]
}

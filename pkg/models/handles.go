package models

// ConnectionHandle is the opaque per-peer identifier issued by the radio
// stack when a connection is established
type ConnectionHandle uint8

// NoConnection is the sentinel handle meaning no peer is attached
const NoConnection ConnectionHandle = 0xFF

// AdvertiserHandle identifies an advertising set owned by the radio stack
type AdvertiserHandle uint8

// CharacteristicHandle identifies an attribute-table characteristic
type CharacteristicHandle uint16

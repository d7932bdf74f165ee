package blemidi

// PacketLength is the fixed size of one BLE-MIDI notification payload
const PacketLength = 5

// Byte offsets within a Packet. The payload is kept as an explicit byte array
// with named offsets instead of a packed struct.
const (
	headerOffset       = 0
	timestampLowOffset = 1
	statusOffset       = 2
	noteOffset         = 3
	velocityOffset     = 4
)

const (
	// StatusNoteOn is the MIDI note-on status byte with channel nibble 0
	StatusNoteOn = 0x90
	// StatusNoteOff is the MIDI note-off status byte with channel nibble 0
	StatusNoteOff = 0x80

	// markerBit is set on both the header and the timestamp-low byte
	markerBit = 0x80
	// timestampLowMask keeps 6 of the low timestamp bits. The BLE-MIDI spec
	// allows 7 (0x7F); the narrower field is kept for byte-exact compatibility
	// with clients paired against the existing encoding.
	timestampLowMask = 0x3F
)

// Packet is a single immutable BLE-MIDI notification payload:
// header, timestamp low, status, note, velocity.
type Packet [PacketLength]byte

func (p Packet) Header() byte       { return p[headerOffset] }
func (p Packet) TimestampLow() byte { return p[timestampLowOffset] }
func (p Packet) Status() byte       { return p[statusOffset] }
func (p Packet) Note() byte         { return p[noteOffset] }
func (p Packet) Velocity() byte     { return p[velocityOffset] }

// Timestamp13 recovers the embedded timestamp value. Bit 6 is never carried
// on the wire (see timestampLowMask), so the result equals the encoder's
// input milliseconds masked with 0x1FBF.
func (p Packet) Timestamp13() uint16 {
	high := uint16(p[headerOffset] & 0x3F)
	low := uint16(p[timestampLowOffset] & timestampLowMask)
	return high<<7 | low
}

// Bytes returns the payload in wire order.
func (p Packet) Bytes() []byte {
	return p[:]
}

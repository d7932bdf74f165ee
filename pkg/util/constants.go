package util

const (
	// MIDIServiceUUID represents UUID for the BLE-MIDI service as published in the BLE-MIDI specification
	MIDIServiceUUID = "03B80E5A-EDE8-4B33-A751-6CE34EC4C700"
	// MIDICharUUID represents UUID for the single BLE-MIDI data characteristic (read, write, notify)
	MIDICharUUID = "7772E5DB-3868-4112-A1A9-F2669D106BF3"
	// DefaultDeviceName is advertised and exposed through the read-only device name characteristic
	DefaultDeviceName = "MIDI in to BLE"
	// MIDIBaudRate is the wire speed of the DIN serial MIDI transport (8 data bits, no parity, 1 stop bit)
	MIDIBaudRate = 31250
	// AdvertisingIntervalTicks is the default advertising interval in 0.625 ms ticks (160 = 100 ms)
	AdvertisingIntervalTicks = 160
)

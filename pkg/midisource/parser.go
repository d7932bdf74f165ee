package midisource

import "github.com/silabs-GiangN/midi-in-to-ble/pkg/capture"

// noteParser is a minimal streaming MIDI byte parser: note-on and note-off
// only, with running status. System realtime bytes may appear in the middle
// of a message and are skipped without disturbing it; every other message
// type resets the parser and is ignored.
type noteParser struct {
	status byte
	data   [2]byte
	have   int
}

func (p *noteParser) feed(b byte, sink capture.Sink) {
	if b >= 0xF8 {
		return
	}
	if b&0x80 != 0 {
		p.status = b
		p.have = 0
		return
	}
	switch p.status & 0xF0 {
	case 0x90, 0x80:
	default:
		return
	}
	p.data[p.have] = b
	p.have++
	if p.have < 2 {
		return
	}
	// running status: the status byte stays armed for the next data pair
	p.have = 0
	key, velocity := p.data[0], p.data[1]
	if p.status&0xF0 == 0x80 || velocity == 0 {
		sink.OnNoteOff(key, velocity)
		return
	}
	sink.OnNoteOn(key, velocity)
}

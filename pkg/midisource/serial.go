package midisource

import (
	"context"

	"github.com/pkg/errors"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/capture"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/util"
	"github.com/sirupsen/logrus"
	"github.com/tarm/serial"
)

// SerialSource reads raw DIN MIDI bytes from a serial device at 31250 baud
// 8N1 and feeds parsed note events into a bounded queue. The queue's drop
// counter accounts for events lost while the consumer lags.
type SerialSource struct {
	port  *serial.Port
	queue *capture.Queue
	log   logrus.FieldLogger
}

// OpenSerial opens the serial device carrying wired MIDI.
func OpenSerial(device string, queue *capture.Queue, log logrus.FieldLogger) (*SerialSource, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: util.MIDIBaudRate})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s issue", device)
	}
	return &SerialSource{port: port, queue: queue, log: log}, nil
}

// Run pumps the port until ctx is cancelled or the port errors. It reports
// the drop counter whenever it grows.
func (s *SerialSource) Run(ctx context.Context) error {
	defer s.port.Close()
	var parser noteParser
	var reported uint32
	buf := make([]byte, 64)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		n, err := s.port.Read(buf)
		if err != nil {
			return errors.Wrap(err, "serial read issue")
		}
		for _, b := range buf[:n] {
			parser.feed(b, s.queue)
		}
		if dropped := s.queue.Dropped(); dropped != reported {
			s.log.WithField("dropped", dropped).Warn("note events lost to full queue")
			reported = dropped
		}
	}
}

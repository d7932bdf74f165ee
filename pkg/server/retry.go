package server

import (
	"time"

	"github.com/pkg/errors"
)

const (
	restartAttempts  = 3
	restartBaseDelay = 50 * time.Millisecond
)

// retryWithBackoff runs fn up to attempts times, doubling the wait between
// tries starting at baseDelay.
func retryWithBackoff(attempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(delay)
			delay *= 2
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return errors.Wrap(err, "exceeded attempts issue")
}

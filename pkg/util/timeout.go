package util

import (
	"time"

	"github.com/pkg/errors"
)

// Timeout is a utility method used to give up on the named call after the
// specified interval. The call itself keeps running in its goroutine; only
// the wait is abandoned.
func Timeout(op string, fn func() error, duration time.Duration) error {
	ch := make(chan error, 1)
	go func() {
		ch <- fn()
	}()
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case err := <-ch:
		return err
	case <-timer.C:
		return errors.Errorf("%s timed out after %s", op, duration)
	}
}

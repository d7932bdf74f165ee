package radio

import (
	"testing"

	"gotest.tools/assert"
)

func TestTimingBeforeSetCreationIsRejected(t *testing.T) {
	s := NewStack("test")
	err := s.SetAdvertisingTiming(0, 160, 160, 0, 0)
	assert.Equal(t, err, errNoAdvertisingSet)
}

func TestCreateAdvertisingSetIsSingleUse(t *testing.T) {
	s := NewStack("test")
	_, err := s.CreateAdvertisingSet()
	assert.NilError(t, err)
	_, err = s.CreateAdvertisingSet()
	assert.ErrorContains(t, err, "already created")
}

func TestUnsupportedTimingLimitsAreRejected(t *testing.T) {
	s := NewStack("test")
	_, err := s.CreateAdvertisingSet()
	assert.NilError(t, err)
	assert.ErrorContains(t, s.SetAdvertisingTiming(0, 160, 160, 100, 0), "not supported")
	assert.ErrorContains(t, s.SetAdvertisingTiming(0, 160, 160, 0, 5), "not supported")
	assert.ErrorContains(t, s.SetAdvertisingTiming(0, 160, 80, 0, 0), "invalid advertising interval")
	assert.NilError(t, s.SetAdvertisingTiming(0, 160, 160, 0, 0))
}

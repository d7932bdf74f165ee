package server

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/silabs-GiangN/midi-in-to-ble/internal"
	"github.com/silabs-GiangN/midi-in-to-ble/pkg/models"
	"github.com/sirupsen/logrus"
	"gotest.tools/assert"
)

const testMIDIChar models.CharacteristicHandle = 0x0014

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func getTestServer(r *internal.DummyRadio, l models.ConnectionListener) *BLEMIDIServer {
	return NewBLEMIDIServer(r, testMIDIChar, l, quietLogger())
}

func TestInitialState(t *testing.T) {
	srv := getTestServer(internal.NewDummyRadio(), nil)
	assert.Equal(t, srv.State(), models.Idle)
	assert.Equal(t, srv.Connection(), models.NoConnection)
}

func TestBootCreatesAdvertisingSetOnce(t *testing.T) {
	r := internal.NewDummyRadio()
	srv := getTestServer(r, nil)
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	assert.Equal(t, r.CreateCalls, 1)
	assert.Equal(t, r.TimingCalls, 1)
	assert.Equal(t, srv.State(), models.Advertising)
}

func TestBootFailureIsFatal(t *testing.T) {
	r := internal.NewDummyRadio()
	r.CreateErr = errors.New("no radio")
	srv := getTestServer(r, nil)
	err := srv.HandleEvent(models.BootEvent{})
	assert.ErrorContains(t, err, "create advertising set issue")
	assert.Equal(t, srv.State(), models.Idle)
}

func TestTimingFailureIsFatal(t *testing.T) {
	r := internal.NewDummyRadio()
	r.TimingErr = errors.New("bad interval")
	srv := getTestServer(r, nil)
	err := srv.HandleEvent(models.BootEvent{})
	assert.ErrorContains(t, err, "advertising timing issue")
}

func TestConnectionOpenedStoresHandle(t *testing.T) {
	r := internal.NewDummyRadio()
	listener := &internal.RecordingListener{}
	srv := getTestServer(r, listener)
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	assert.NilError(t, srv.HandleEvent(models.ConnectionOpenedEvent{Handle: 7}))
	assert.Equal(t, srv.State(), models.Connected)
	assert.Equal(t, srv.Connection(), models.ConnectionHandle(7))
	assert.DeepEqual(t, listener.Connected, []models.ConnectionHandle{7})
}

func TestConnectionClosedRestartsAdvertising(t *testing.T) {
	r := internal.NewDummyRadio()
	listener := &internal.RecordingListener{}
	srv := getTestServer(r, listener)
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	assert.NilError(t, srv.HandleEvent(models.ConnectionOpenedEvent{Handle: 7}))
	assert.NilError(t, srv.HandleEvent(models.ConnectionClosedEvent{}))
	// exactly one generate+start pair beyond the boot pair
	assert.Equal(t, r.GenerateCalls, 2)
	assert.Equal(t, r.StartCalls, 2)
	assert.Equal(t, srv.State(), models.Advertising)
	assert.Equal(t, srv.Connection(), models.NoConnection)
	assert.Equal(t, listener.DisconnectCount, 1)
	assert.Equal(t, listener.AdvertisingCount, 2)
}

func TestRestartFailureIsRetriedAndAbsorbed(t *testing.T) {
	r := internal.NewDummyRadio()
	srv := getTestServer(r, nil)
	assert.NilError(t, srv.HandleEvent(models.BootEvent{}))
	assert.NilError(t, srv.HandleEvent(models.ConnectionOpenedEvent{Handle: 1}))
	r.StartErr = errors.New("controller busy")
	assert.NilError(t, srv.HandleEvent(models.ConnectionClosedEvent{}))
	assert.Equal(t, r.StartCalls, 1+restartAttempts)
	assert.Equal(t, srv.State(), models.Advertising)
}

func TestOtherEventsAreIgnored(t *testing.T) {
	r := internal.NewDummyRadio()
	srv := getTestServer(r, nil)
	assert.NilError(t, srv.HandleEvent(models.OtherEvent{Code: 0x040081}))
	assert.Equal(t, r.CreateCalls, 0)
	assert.Equal(t, srv.State(), models.Idle)
}

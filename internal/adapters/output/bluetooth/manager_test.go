package bluetooth

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-audio-router/internal/domain/model"
)

// listener records callbacks and queries the manager from inside them.
type listener struct {
	m      *Manager
	events []string
	audio  []bool
}

func (l *listener) record(name string) error {
	l.events = append(l.events, name)
	l.audio = append(l.audio, l.m.IsBluetoothAudioConnectedOrPending())
	return nil
}

func (l *listener) OnBluetoothDeviceListChanged() error   { return l.record("list") }
func (l *listener) OnBluetoothActiveDevicePresent() error { return l.record("present") }
func (l *listener) OnBluetoothActiveDeviceGone() error    { return l.record("gone") }
func (l *listener) OnBluetoothAudioConnected() error      { return l.record("connected") }
func (l *listener) OnBluetoothAudioConnecting() error     { return l.record("connecting") }
func (l *listener) OnBluetoothAudioDisconnected() error   { return l.record("disconnected") }
func (l *listener) OnUnexpectedBluetoothStateChange() error {
	return l.record("unexpected")
}

var (
	hearingAid = &model.BluetoothDevice{Address: "10:00:00:00:00:01", Name: "Aid", Kind: model.DeviceKindHearingAid}
	leBuds     = &model.BluetoothDevice{Address: "10:00:00:00:00:02", Name: "Buds", Kind: model.DeviceKindLeAudio}
	carKit     = &model.BluetoothDevice{Address: "10:00:00:00:00:03", Name: "Car", Kind: model.DeviceKindClassic}
)

func TestManager_AudioLifecycle(t *testing.T) {
	m := NewManager(hearingAid, leBuds)
	l := &listener{m: m}
	m.SetListener(l)

	require.NoError(t, m.SetActiveDevice(leBuds.Address))
	require.NoError(t, m.AudioConnecting(leBuds.Address))
	assert.True(t, m.IsBluetoothAudioConnectedOrPending())
	assert.Nil(t, m.GetBluetoothAudioConnectedDevice())

	require.NoError(t, m.AudioConnected(leBuds.Address))
	assert.Same(t, leBuds, m.GetBluetoothAudioConnectedDevice())
	assert.True(t, m.IsCachedLeAudioDevice(m.GetBluetoothAudioConnectedDevice()))
	assert.False(t, m.IsCachedHearingAidDevice(m.GetBluetoothAudioConnectedDevice()))

	require.NoError(t, m.AudioDisconnected())
	require.NoError(t, m.SetActiveDevice(""))
	require.NoError(t, m.UnexpectedStateChange())

	want := []string{"present", "connecting", "connected", "disconnected", "gone", "unexpected"}
	if diff := cmp.Diff(want, l.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []bool{false, true, true, false, false, false}, l.audio)
}

func TestManager_CacheLookups(t *testing.T) {
	m := NewManager(hearingAid)

	assert.True(t, m.IsCachedHearingAidDevice(hearingAid))
	assert.False(t, m.IsCachedHearingAidDevice(nil))
	assert.False(t, m.IsCachedLeAudioDevice(leBuds))

	assert.ErrorIs(t, m.AudioConnected(leBuds.Address), ErrUnknownDevice)
	assert.ErrorIs(t, m.SetActiveDevice("nope"), ErrUnknownDevice)
	assert.Error(t, m.AddDevice(&model.BluetoothDevice{}))
}

func TestManager_RemoveConnectedDevice(t *testing.T) {
	m := NewManager()
	l := &listener{m: m}
	m.SetListener(l)

	require.NoError(t, m.AddDevice(carKit))
	require.NoError(t, m.SetActiveDevice(carKit.Address))
	require.NoError(t, m.AudioConnected(carKit.Address))
	require.NoError(t, m.RemoveDevice(carKit.Address))

	assert.False(t, m.IsBluetoothAudioConnectedOrPending())
	assert.Empty(t, m.Devices())
	want := []string{"list", "present", "connected", "list", "disconnected", "gone"}
	if diff := cmp.Diff(want, l.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	assert.ErrorIs(t, m.RemoveDevice(carKit.Address), ErrUnknownDevice)
}

func TestManager_NoListener(t *testing.T) {
	m := NewManager(carKit)
	assert.NoError(t, m.AudioConnected(carKit.Address))
	assert.True(t, m.IsBluetoothAudioConnectedOrPending())
}

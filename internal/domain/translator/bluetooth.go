package translator

import (
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

// BluetoothHandler translates Bluetooth route manager callbacks. Audio
// transitions also update the ringtone player's Bluetooth-active flag.
type BluetoothHandler struct {
	stateMachine ports.RoutingStateMachine
	ringtone     ports.RingtonePlayer
}

var _ ports.BluetoothStateListener = (*BluetoothHandler)(nil)

func NewBluetoothHandler(stateMachine ports.RoutingStateMachine, ringtone ports.RingtonePlayer) *BluetoothHandler {
	return &BluetoothHandler{stateMachine: stateMachine, ringtone: ringtone}
}

func (h *BluetoothHandler) OnBluetoothDeviceListChanged() error {
	return h.stateMachine.SendMessageWithSessionInfo(model.IntentBluetoothDeviceListChanged)
}

func (h *BluetoothHandler) OnBluetoothActiveDevicePresent() error {
	return h.stateMachine.SendMessageWithSessionInfo(model.IntentBtActiveDevicePresent)
}

func (h *BluetoothHandler) OnBluetoothActiveDeviceGone() error {
	return h.stateMachine.SendMessageWithSessionInfo(model.IntentBtActiveDeviceGone)
}

func (h *BluetoothHandler) OnBluetoothAudioConnected() error {
	h.ringtone.UpdateBtActiveState(true)
	return h.stateMachine.SendMessageWithSessionInfo(model.IntentBtAudioConnected)
}

// OnBluetoothAudioConnecting reports the link as connected to the state machine,
// which routes on where audio is headed and has no connecting state. The
// ringtone player still sees Bluetooth as inactive until the link is up.
func (h *BluetoothHandler) OnBluetoothAudioConnecting() error {
	h.ringtone.UpdateBtActiveState(false)
	return h.stateMachine.SendMessageWithSessionInfo(model.IntentBtAudioConnected)
}

func (h *BluetoothHandler) OnBluetoothAudioDisconnected() error {
	h.ringtone.UpdateBtActiveState(false)
	return h.stateMachine.SendMessageWithSessionInfo(model.IntentBtAudioDisconnected)
}

func (h *BluetoothHandler) OnUnexpectedBluetoothStateChange() error {
	return h.stateMachine.SendMessageWithSessionInfo(model.IntentUpdateSystemAudioRoute)
}

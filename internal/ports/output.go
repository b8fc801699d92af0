package ports

import (
	"context"

	"call-audio-router/internal/domain/model"
)

// RoutingStateMachine accepts routing intents into its inbound queue. Session
// information is attached on the state machine side.
type RoutingStateMachine interface {
	SendMessageWithSessionInfo(intent model.Intent) error
}

// BluetoothRouteManager owns Bluetooth audio state and the device-capability cache.
type BluetoothRouteManager interface {
	IsBluetoothAudioConnectedOrPending() bool
	// GetBluetoothAudioConnectedDevice returns nil when no device carries audio.
	GetBluetoothAudioConnectedDevice() *model.BluetoothDevice
	IsCachedHearingAidDevice(device *model.BluetoothDevice) bool
	IsCachedLeAudioDevice(device *model.BluetoothDevice) bool
	// SetListener installs the sole state listener, replacing any previous one.
	SetListener(listener BluetoothStateListener)
}

type RingtonePlayer interface {
	UpdateBtActiveState(isActive bool)
}

type WiredHeadsetManager interface {
	AddListener(listener WiredHeadsetListener)
}

type DockManager interface {
	AddListener(listener DockListener)
}

// MessageJournal records messages delivered by the state machine queue.
type MessageJournal interface {
	Append(ctx context.Context, msg model.Message) error
}

package model

import "time"

// Intent is a routing-intent tag understood by the call audio route state machine.
type Intent string

const (
	IntentBluetoothDeviceListChanged Intent = "BLUETOOTH_DEVICE_LIST_CHANGED"
	IntentBtActiveDevicePresent      Intent = "BT_ACTIVE_DEVICE_PRESENT"
	IntentBtActiveDeviceGone         Intent = "BT_ACTIVE_DEVICE_GONE"
	IntentBtAudioConnected           Intent = "BT_AUDIO_CONNECTED"
	IntentBtAudioDisconnected        Intent = "BT_AUDIO_DISCONNECTED"
	IntentUpdateSystemAudioRoute     Intent = "UPDATE_SYSTEM_AUDIO_ROUTE"
	IntentConnectWiredHeadset        Intent = "CONNECT_WIRED_HEADSET"
	IntentDisconnectWiredHeadset     Intent = "DISCONNECT_WIRED_HEADSET"
	IntentConnectDock                Intent = "CONNECT_DOCK"
	IntentDisconnectDock             Intent = "DISCONNECT_DOCK"
)

// Intents lists the closed vocabulary in a stable order.
func Intents() []Intent {
	return []Intent{
		IntentBluetoothDeviceListChanged,
		IntentBtActiveDevicePresent,
		IntentBtActiveDeviceGone,
		IntentBtAudioConnected,
		IntentBtAudioDisconnected,
		IntentUpdateSystemAudioRoute,
		IntentConnectWiredHeadset,
		IntentDisconnectWiredHeadset,
		IntentConnectDock,
		IntentDisconnectDock,
	}
}

func (i Intent) Valid() bool {
	for _, known := range Intents() {
		if i == known {
			return true
		}
	}
	return false
}

// SessionInfo correlates a message with the routing session and the hop that produced it.
type SessionInfo struct {
	ID       string    `json:"id"`
	Session  string    `json:"session"`
	Sequence uint64    `json:"sequence"`
	SentAt   time.Time `json:"sent_at"`
}

// Message is what lands in the state machine's inbound queue.
type Message struct {
	Intent  Intent      `json:"intent"`
	Session SessionInfo `json:"session"`
}

package ports

// WiredHeadsetListener receives plug-state changes from the wired headset detector.
// Both the previous and the new state are reported; they may be equal when the
// detector re-announces its state.
type WiredHeadsetListener interface {
	OnWiredHeadsetPluggedInChanged(oldPluggedIn, newPluggedIn bool) error
}

// DockListener receives dock-state changes.
type DockListener interface {
	OnDockChanged(isDocked bool) error
}

// BluetoothStateListener receives state changes from the Bluetooth route manager.
type BluetoothStateListener interface {
	OnBluetoothDeviceListChanged() error
	OnBluetoothActiveDevicePresent() error
	OnBluetoothActiveDeviceGone() error
	OnBluetoothAudioConnected() error
	OnBluetoothAudioConnecting() error
	OnBluetoothAudioDisconnected() error
	OnUnexpectedBluetoothStateChange() error
}

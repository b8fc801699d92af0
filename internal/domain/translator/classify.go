package translator

import (
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

// Classify resolves a device's kind through the route manager's capability cache.
// Devices the cache does not flag as hearing aid or LE audio are classic.
func Classify(routeManager ports.BluetoothRouteManager, device *model.BluetoothDevice) model.DeviceKind {
	switch {
	case routeManager.IsCachedHearingAidDevice(device):
		return model.DeviceKindHearingAid
	case routeManager.IsCachedLeAudioDevice(device):
		return model.DeviceKindLeAudio
	default:
		return model.DeviceKindClassic
	}
}

// ConnectedDeviceKind classifies the device currently carrying Bluetooth audio.
// ok is false when no device is connected.
func (a *PeripheralAdapter) ConnectedDeviceKind() (kind model.DeviceKind, ok bool) {
	device := a.routeManager.GetBluetoothAudioConnectedDevice()
	if device == nil {
		return "", false
	}
	return Classify(a.routeManager, device), true
}

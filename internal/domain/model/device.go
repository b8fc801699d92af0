package model

type DeviceKind string

const (
	DeviceKindClassic    DeviceKind = "classic"
	DeviceKindHearingAid DeviceKind = "hearing_aid"
	DeviceKindLeAudio    DeviceKind = "le_audio"
)

func (k DeviceKind) Valid() bool {
	switch k {
	case DeviceKindClassic, DeviceKindHearingAid, DeviceKindLeAudio:
		return true
	}
	return false
}

// BluetoothDevice is a handle into the Bluetooth route manager's device cache.
// A nil *BluetoothDevice means no device.
type BluetoothDevice struct {
	Address string     `json:"address" yaml:"address"`
	Name    string     `json:"name,omitempty" yaml:"name,omitempty"`
	Kind    DeviceKind `json:"kind" yaml:"kind"`
}

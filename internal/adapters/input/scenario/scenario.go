package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"call-audio-router/internal/domain/model"
)

var ErrUnknownSource = errors.New("scenario: unknown source")

type Source string

const (
	SourceHeadset   Source = "headset"
	SourceDock      Source = "dock"
	SourceBluetooth Source = "bluetooth"
)

// Bluetooth events a step can drive.
const (
	EventDeviceAdded       = "device_added"
	EventDeviceRemoved     = "device_removed"
	EventActiveDevice      = "active_device"
	EventAudioConnecting   = "audio_connecting"
	EventAudioConnected    = "audio_connected"
	EventAudioDisconnected = "audio_disconnected"
	EventUnexpected        = "unexpected"
)

// Step is one peripheral event. Which fields apply depends on Source.
type Step struct {
	Source  Source                 `yaml:"source" json:"source"`
	Plugged *bool                  `yaml:"plugged,omitempty" json:"plugged,omitempty"`
	Docked  *bool                  `yaml:"docked,omitempty" json:"docked,omitempty"`
	Event   string                 `yaml:"event,omitempty" json:"event,omitempty"`
	Address string                 `yaml:"address,omitempty" json:"address,omitempty"`
	Device  *model.BluetoothDevice `yaml:"device,omitempty" json:"device,omitempty"`
}

type document struct {
	Steps []Step `yaml:"steps"`
}

func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	steps, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return steps, nil
}

func Parse(data []byte) ([]Step, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, err
	}
	for i, s := range doc.Steps {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return doc.Steps, nil
}

func (s Step) Validate() error {
	switch s.Source {
	case SourceHeadset:
		if s.Plugged == nil {
			return errors.New("headset step needs plugged")
		}
	case SourceDock:
		if s.Docked == nil {
			return errors.New("dock step needs docked")
		}
	case SourceBluetooth:
		switch s.Event {
		case EventDeviceAdded:
			if s.Device == nil || s.Device.Address == "" {
				return errors.New("device_added needs device.address")
			}
			if !s.Device.Kind.Valid() {
				return fmt.Errorf("device_added: unknown kind %q", s.Device.Kind)
			}
		case EventDeviceRemoved, EventAudioConnecting, EventAudioConnected:
			if s.Address == "" {
				return fmt.Errorf("%s needs address", s.Event)
			}
		case EventActiveDevice, EventAudioDisconnected, EventUnexpected:
		default:
			return fmt.Errorf("unknown bluetooth event %q", s.Event)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownSource, s.Source)
	}
	return nil
}

type HeadsetSource interface {
	SetPluggedIn(pluggedIn bool) error
}

type DockSource interface {
	SetDocked(docked bool) error
}

type BluetoothSource interface {
	AddDevice(device *model.BluetoothDevice) error
	RemoveDevice(address string) error
	SetActiveDevice(address string) error
	AudioConnecting(address string) error
	AudioConnected(address string) error
	AudioDisconnected() error
	UnexpectedStateChange() error
}

// Player drives peripheral sources from steps.
type Player struct {
	headset   HeadsetSource
	dock      DockSource
	bluetooth BluetoothSource
}

func NewPlayer(headset HeadsetSource, dock DockSource, bluetooth BluetoothSource) *Player {
	return &Player{headset: headset, dock: dock, bluetooth: bluetooth}
}

// Play applies steps in order and stops at the first failure.
func (p *Player) Play(ctx context.Context, steps []Step) error {
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Apply(s); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Source, err)
		}
	}
	return nil
}

func (p *Player) Apply(s Step) error {
	if err := s.Validate(); err != nil {
		return err
	}
	switch s.Source {
	case SourceHeadset:
		return p.headset.SetPluggedIn(*s.Plugged)
	case SourceDock:
		return p.dock.SetDocked(*s.Docked)
	}

	switch s.Event {
	case EventDeviceAdded:
		return p.bluetooth.AddDevice(s.Device)
	case EventDeviceRemoved:
		return p.bluetooth.RemoveDevice(s.Address)
	case EventActiveDevice:
		return p.bluetooth.SetActiveDevice(s.Address)
	case EventAudioConnecting:
		return p.bluetooth.AudioConnecting(s.Address)
	case EventAudioConnected:
		return p.bluetooth.AudioConnected(s.Address)
	case EventAudioDisconnected:
		return p.bluetooth.AudioDisconnected()
	default:
		return p.bluetooth.UnexpectedStateChange()
	}
}

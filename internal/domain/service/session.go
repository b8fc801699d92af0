package service

import (
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/domain/translator"
	"call-audio-router/internal/ports"
)

// Collaborators are the live, externally owned parts a routing session plugs into.
type Collaborators struct {
	StateMachine ports.RoutingStateMachine
	Bluetooth    ports.BluetoothRouteManager
	WiredHeadset ports.WiredHeadsetManager
	Dock         ports.DockManager
	Ringtone     ports.RingtonePlayer
}

// Status is a point-in-time read of the peripheral queries.
type Status struct {
	BluetoothAudioOn bool             `json:"bluetooth_audio_on"`
	HearingAidOn     bool             `json:"hearing_aid_on"`
	LeAudioOn        bool             `json:"le_audio_on"`
	ConnectedKind    model.DeviceKind `json:"connected_kind,omitempty"`
}

// RoutingSession owns the peripheral adapter for one call-audio-routing session.
type RoutingSession struct {
	adapter *translator.PeripheralAdapter
}

func NewRoutingSession(c Collaborators) (*RoutingSession, error) {
	adapter, err := translator.NewPeripheralAdapter(c.StateMachine, c.Bluetooth, c.WiredHeadset, c.Dock, c.Ringtone)
	if err != nil {
		return nil, err
	}
	return &RoutingSession{adapter: adapter}, nil
}

func (s *RoutingSession) Translator() *translator.PeripheralAdapter {
	return s.adapter
}

func (s *RoutingSession) Status() Status {
	st := Status{
		BluetoothAudioOn: s.adapter.IsBluetoothAudioOn(),
		HearingAidOn:     s.adapter.IsHearingAidDeviceOn(),
		LeAudioOn:        s.adapter.IsLeAudioDeviceOn(),
	}
	if kind, ok := s.adapter.ConnectedDeviceKind(); ok {
		st.ConnectedKind = kind
	}
	return st
}

package translator

import (
	"errors"
	"fmt"

	"call-audio-router/internal/ports"
)

var ErrNilCollaborator = errors.New("translator: nil collaborator")

// PeripheralAdapter listens to the wired headset detector, the dock detector and
// the Bluetooth route manager, and turns what they report into routing intents
// for the call audio route state machine.
//
// Each source is served by its own handler. The adapter embeds all three so it
// satisfies every listener interface, but the handlers share nothing except the
// state machine reference and can be driven independently. Callbacks run on the
// caller's goroutine; the adapter holds no locks and no state between calls.
type PeripheralAdapter struct {
	*BluetoothHandler
	*WiredHeadsetHandler
	*DockHandler

	routeManager ports.BluetoothRouteManager
}

var (
	_ ports.BluetoothStateListener = (*PeripheralAdapter)(nil)
	_ ports.WiredHeadsetListener   = (*PeripheralAdapter)(nil)
	_ ports.DockListener           = (*PeripheralAdapter)(nil)
)

// NewPeripheralAdapter builds the adapter and registers it with all three event
// sources. It fails before registering anything if a collaborator is missing.
func NewPeripheralAdapter(
	stateMachine ports.RoutingStateMachine,
	routeManager ports.BluetoothRouteManager,
	wiredHeadsetManager ports.WiredHeadsetManager,
	dockManager ports.DockManager,
	ringtonePlayer ports.RingtonePlayer,
) (*PeripheralAdapter, error) {
	switch {
	case stateMachine == nil:
		return nil, fmt.Errorf("%w: state machine", ErrNilCollaborator)
	case routeManager == nil:
		return nil, fmt.Errorf("%w: bluetooth route manager", ErrNilCollaborator)
	case wiredHeadsetManager == nil:
		return nil, fmt.Errorf("%w: wired headset manager", ErrNilCollaborator)
	case dockManager == nil:
		return nil, fmt.Errorf("%w: dock manager", ErrNilCollaborator)
	case ringtonePlayer == nil:
		return nil, fmt.Errorf("%w: ringtone player", ErrNilCollaborator)
	}

	a := &PeripheralAdapter{
		BluetoothHandler:    NewBluetoothHandler(stateMachine, ringtonePlayer),
		WiredHeadsetHandler: NewWiredHeadsetHandler(stateMachine),
		DockHandler:         NewDockHandler(stateMachine),
		routeManager:        routeManager,
	}

	routeManager.SetListener(a.BluetoothHandler)
	wiredHeadsetManager.AddListener(a.WiredHeadsetHandler)
	dockManager.AddListener(a.DockHandler)
	return a, nil
}

// IsBluetoothAudioOn reports whether Bluetooth audio is connected or about to be.
func (a *PeripheralAdapter) IsBluetoothAudioOn() bool {
	return a.routeManager.IsBluetoothAudioConnectedOrPending()
}

func (a *PeripheralAdapter) IsHearingAidDeviceOn() bool {
	device := a.routeManager.GetBluetoothAudioConnectedDevice()
	if device == nil {
		return false
	}
	return a.routeManager.IsCachedHearingAidDevice(device)
}

func (a *PeripheralAdapter) IsLeAudioDeviceOn() bool {
	device := a.routeManager.GetBluetoothAudioConnectedDevice()
	if device == nil {
		return false
	}
	return a.routeManager.IsCachedLeAudioDevice(device)
}

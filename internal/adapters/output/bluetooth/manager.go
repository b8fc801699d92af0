package bluetooth

import (
	"errors"
	"fmt"
	"sync"

	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

var ErrUnknownDevice = errors.New("bluetooth: device not in cache")

// Manager is an in-process Bluetooth route manager. It caches device
// capabilities by address, tracks the active and audio-connected devices, and
// reports every change to a single listener. The listener is called after the
// state change is visible and outside the manager's lock, so it may query back.
type Manager struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex
	devices   map[string]*model.BluetoothDevice
	active    *model.BluetoothDevice
	connected *model.BluetoothDevice
	pending   *model.BluetoothDevice
	listener  ports.BluetoothStateListener
}

var _ ports.BluetoothRouteManager = (*Manager)(nil)

func NewManager(devices ...*model.BluetoothDevice) *Manager {
	m := &Manager{devices: make(map[string]*model.BluetoothDevice, len(devices))}
	for _, d := range devices {
		if d != nil {
			m.devices[d.Address] = d
		}
	}
	return m
}

func (m *Manager) SetListener(listener ports.BluetoothStateListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = listener
}

func (m *Manager) IsBluetoothAudioConnectedOrPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected != nil || m.pending != nil
}

func (m *Manager) GetBluetoothAudioConnectedDevice() *model.BluetoothDevice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *Manager) IsCachedHearingAidDevice(device *model.BluetoothDevice) bool {
	return m.cachedKind(device) == model.DeviceKindHearingAid
}

func (m *Manager) IsCachedLeAudioDevice(device *model.BluetoothDevice) bool {
	return m.cachedKind(device) == model.DeviceKindLeAudio
}

func (m *Manager) cachedKind(device *model.BluetoothDevice) model.DeviceKind {
	if device == nil {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.devices[device.Address]; ok {
		return cached.Kind
	}
	return ""
}

// Devices returns the cached devices in no particular order.
func (m *Manager) Devices() []*model.BluetoothDevice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.BluetoothDevice, 0, len(m.devices))
	for _, d := range m.devices {
		out = append(out, d)
	}
	return out
}

func (m *Manager) AddDevice(device *model.BluetoothDevice) error {
	if device == nil || device.Address == "" {
		return errors.New("bluetooth: device address is required")
	}
	return m.update(func() {
		m.devices[device.Address] = device
	}, ports.BluetoothStateListener.OnBluetoothDeviceListChanged)
}

// RemoveDevice drops a device from the cache. If it was active or carrying
// audio, that state is cleared too.
func (m *Manager) RemoveDevice(address string) error {
	var err error
	var events []func(ports.BluetoothStateListener) error
	uerr := m.update(func() {
		dev, ok := m.devices[address]
		if !ok {
			err = fmt.Errorf("%w: %s", ErrUnknownDevice, address)
			return
		}
		delete(m.devices, address)
		events = append(events, ports.BluetoothStateListener.OnBluetoothDeviceListChanged)
		if m.connected == dev || m.pending == dev {
			m.connected, m.pending = nil, nil
			events = append(events, ports.BluetoothStateListener.OnBluetoothAudioDisconnected)
		}
		if m.active == dev {
			m.active = nil
			events = append(events, ports.BluetoothStateListener.OnBluetoothActiveDeviceGone)
		}
	}, func(l ports.BluetoothStateListener) error {
		for _, fire := range events {
			if err := fire(l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return uerr
}

// SetActiveDevice marks a cached device active; an empty address clears it.
func (m *Manager) SetActiveDevice(address string) error {
	if address == "" {
		return m.update(func() { m.active = nil }, ports.BluetoothStateListener.OnBluetoothActiveDeviceGone)
	}
	dev, err := m.lookup(address)
	if err != nil {
		return err
	}
	return m.update(func() { m.active = dev }, ports.BluetoothStateListener.OnBluetoothActiveDevicePresent)
}

func (m *Manager) AudioConnecting(address string) error {
	dev, err := m.lookup(address)
	if err != nil {
		return err
	}
	return m.update(func() {
		m.pending, m.connected = dev, nil
	}, ports.BluetoothStateListener.OnBluetoothAudioConnecting)
}

func (m *Manager) AudioConnected(address string) error {
	dev, err := m.lookup(address)
	if err != nil {
		return err
	}
	return m.update(func() {
		m.connected, m.pending = dev, nil
	}, ports.BluetoothStateListener.OnBluetoothAudioConnected)
}

func (m *Manager) AudioDisconnected() error {
	return m.update(func() {
		m.connected, m.pending = nil, nil
	}, ports.BluetoothStateListener.OnBluetoothAudioDisconnected)
}

// UnexpectedStateChange reports state the manager cannot explain, asking the
// listener to reconcile against the system audio route.
func (m *Manager) UnexpectedStateChange() error {
	return m.update(func() {}, ports.BluetoothStateListener.OnUnexpectedBluetoothStateChange)
}

func (m *Manager) lookup(address string) (*model.BluetoothDevice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, ok := m.devices[address]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, address)
	}
	return dev, nil
}

// update applies mutate under the state lock, then notifies the listener.
// notifyMu keeps callbacks in the order the changes were applied.
func (m *Manager) update(mutate func(), notify func(ports.BluetoothStateListener) error) error {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	mutate()
	listener := m.listener
	m.mu.Unlock()

	if listener == nil {
		return nil
	}
	return notify(listener)
}

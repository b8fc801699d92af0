package translator

import (
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

type MockStateMachine struct {
	mock.Mock
}

func (m *MockStateMachine) SendMessageWithSessionInfo(intent model.Intent) error {
	args := m.Called(intent)
	return args.Error(0)
}

type MockRouteManager struct {
	mock.Mock
}

func (m *MockRouteManager) IsBluetoothAudioConnectedOrPending() bool {
	return m.Called().Bool(0)
}

func (m *MockRouteManager) GetBluetoothAudioConnectedDevice() *model.BluetoothDevice {
	args := m.Called()
	if d := args.Get(0); d != nil {
		return d.(*model.BluetoothDevice)
	}
	return nil
}

func (m *MockRouteManager) IsCachedHearingAidDevice(device *model.BluetoothDevice) bool {
	return m.Called(device).Bool(0)
}

func (m *MockRouteManager) IsCachedLeAudioDevice(device *model.BluetoothDevice) bool {
	return m.Called(device).Bool(0)
}

func (m *MockRouteManager) SetListener(listener ports.BluetoothStateListener) {
	m.Called(listener)
}

type MockHeadsetManager struct {
	mock.Mock
}

func (m *MockHeadsetManager) AddListener(listener ports.WiredHeadsetListener) {
	m.Called(listener)
}

type MockDockManager struct {
	mock.Mock
}

func (m *MockDockManager) AddListener(listener ports.DockListener) {
	m.Called(listener)
}

type MockRingtone struct {
	mock.Mock
}

func (m *MockRingtone) UpdateBtActiveState(isActive bool) {
	m.Called(isActive)
}

// recorder stands in for both the state machine and the ringtone player and
// keeps a single ordered log of what it saw.
type recorder struct {
	mu      sync.Mutex
	intents []model.Intent
	calls   []string
	err     error
}

func (r *recorder) SendMessageWithSessionInfo(intent model.Intent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, intent)
	r.calls = append(r.calls, "send:"+string(intent))
	return r.err
}

func (r *recorder) UpdateBtActiveState(isActive bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("ringtone:%t", isActive))
}

func (r *recorder) Intents() []model.Intent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Intent(nil), r.intents...)
}

func (r *recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

package detector

import (
	"sync"

	"call-audio-router/internal/ports"
)

// WiredHeadset reports plug state to its listeners. Every SetPluggedIn call is
// announced, including ones that repeat the current state.
type WiredHeadset struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex
	plugged   bool
	listeners []ports.WiredHeadsetListener
}

var _ ports.WiredHeadsetManager = (*WiredHeadset)(nil)

func NewWiredHeadset() *WiredHeadset {
	return &WiredHeadset{}
}

func (h *WiredHeadset) AddListener(listener ports.WiredHeadsetListener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, listener)
}

func (h *WiredHeadset) IsPluggedIn() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.plugged
}

// SetPluggedIn records the new state and calls each listener with the old and
// new values. The first listener error stops the fan-out and is returned.
func (h *WiredHeadset) SetPluggedIn(pluggedIn bool) error {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	h.mu.Lock()
	old := h.plugged
	h.plugged = pluggedIn
	listeners := append([]ports.WiredHeadsetListener(nil), h.listeners...)
	h.mu.Unlock()

	for _, l := range listeners {
		if err := l.OnWiredHeadsetPluggedInChanged(old, pluggedIn); err != nil {
			return err
		}
	}
	return nil
}

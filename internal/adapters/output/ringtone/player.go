package ringtone

import (
	"sync"

	"call-audio-router/internal/ports"
)

// Player tracks whether Bluetooth audio is usable for in-band ringing.
type Player struct {
	mu      sync.Mutex
	active  bool
	history []bool
}

var _ ports.RingtonePlayer = (*Player)(nil)

func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) UpdateBtActiveState(isActive bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = isActive
	p.history = append(p.history, isActive)
}

func (p *Player) BtActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// History returns every update in the order received.
func (p *Player) History() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.history...)
}

package detector

import (
	"sync"

	"call-audio-router/internal/ports"
)

type Dock struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex
	docked    bool
	listeners []ports.DockListener
}

var _ ports.DockManager = (*Dock)(nil)

func NewDock() *Dock {
	return &Dock{}
}

func (d *Dock) AddListener(listener ports.DockListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

func (d *Dock) IsDocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.docked
}

func (d *Dock) SetDocked(docked bool) error {
	d.notifyMu.Lock()
	defer d.notifyMu.Unlock()

	d.mu.Lock()
	d.docked = docked
	listeners := append([]ports.DockListener(nil), d.listeners...)
	d.mu.Unlock()

	for _, l := range listeners {
		if err := l.OnDockChanged(docked); err != nil {
			return err
		}
	}
	return nil
}

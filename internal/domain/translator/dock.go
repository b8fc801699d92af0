package translator

import (
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

type DockHandler struct {
	stateMachine ports.RoutingStateMachine
}

var _ ports.DockListener = (*DockHandler)(nil)

func NewDockHandler(stateMachine ports.RoutingStateMachine) *DockHandler {
	return &DockHandler{stateMachine: stateMachine}
}

func (h *DockHandler) OnDockChanged(isDocked bool) error {
	if isDocked {
		return h.stateMachine.SendMessageWithSessionInfo(model.IntentConnectDock)
	}
	return h.stateMachine.SendMessageWithSessionInfo(model.IntentDisconnectDock)
}

package translator

import (
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

type WiredHeadsetHandler struct {
	stateMachine ports.RoutingStateMachine
}

var _ ports.WiredHeadsetListener = (*WiredHeadsetHandler)(nil)

func NewWiredHeadsetHandler(stateMachine ports.RoutingStateMachine) *WiredHeadsetHandler {
	return &WiredHeadsetHandler{stateMachine: stateMachine}
}

// OnWiredHeadsetPluggedInChanged sends an intent only on a plug or unplug edge.
// The detector re-announces unchanged state, which must not reach the state machine.
func (h *WiredHeadsetHandler) OnWiredHeadsetPluggedInChanged(oldPluggedIn, newPluggedIn bool) error {
	switch {
	case !oldPluggedIn && newPluggedIn:
		return h.stateMachine.SendMessageWithSessionInfo(model.IntentConnectWiredHeadset)
	case oldPluggedIn && !newPluggedIn:
		return h.stateMachine.SendMessageWithSessionInfo(model.IntentDisconnectWiredHeadset)
	}
	return nil
}

package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"call-audio-router/internal/adapters/input/scenario"
	"call-audio-router/internal/adapters/output/bluetooth"
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/domain/service"
)

// Server exposes peripheral status and lets a client inject peripheral events.
type Server struct {
	session *service.RoutingSession
	player  *scenario.Player
	config  *service.ConfigService
	logger  *log.Logger
}

func NewServer(session *service.RoutingSession, player *scenario.Player, config *service.ConfigService, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{session: session, player: player, config: config, logger: logger}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("POST /events/headset", s.handleHeadset)
	mux.HandleFunc("POST /events/dock", s.handleDock)
	mux.HandleFunc("POST /events/bluetooth", s.handleBluetooth)
	mux.HandleFunc("GET /config", s.handleGetConfig)
	mux.HandleFunc("PUT /config", s.handlePutConfig)
	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Status())
}

func (s *Server) handleHeadset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Plugged *bool `json:"plugged"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.apply(w, scenario.Step{Source: scenario.SourceHeadset, Plugged: body.Plugged})
}

func (s *Server) handleDock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Docked *bool `json:"docked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.apply(w, scenario.Step{Source: scenario.SourceDock, Docked: body.Docked})
}

func (s *Server) handleBluetooth(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Event   string                 `json:"event"`
		Address string                 `json:"address"`
		Device  *model.BluetoothDevice `json:"device"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.apply(w, scenario.Step{
		Source:  scenario.SourceBluetooth,
		Event:   body.Event,
		Address: body.Address,
		Device:  body.Device,
	})
}

func (s *Server) apply(w http.ResponseWriter, step scenario.Step) {
	if err := step.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.player.Apply(step); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, bluetooth.ErrUnknownDevice) {
			status = http.StatusNotFound
		}
		s.logger.Printf("http: %s event failed: %v", step.Source, err)
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusAccepted, s.session.Status())
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.config.GetConfig(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg model.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.config.UpdateConfig(r.Context(), &cfg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-audio-router/internal/adapters/input/detector"
	"call-audio-router/internal/adapters/input/scenario"
	"call-audio-router/internal/adapters/output/bluetooth"
	"call-audio-router/internal/adapters/output/persistence"
	"call-audio-router/internal/adapters/output/ringtone"
	"call-audio-router/internal/adapters/output/statemachine"
	"call-audio-router/internal/config"
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/domain/service"
)

func newTestServer(t *testing.T) (http.Handler, *statemachine.Queue) {
	t.Helper()
	headset := detector.NewWiredHeadset()
	dock := detector.NewDock()
	bt := bluetooth.NewManager(&model.BluetoothDevice{Address: "30:00:00:00:00:01", Kind: model.DeviceKindHearingAid})
	queue := statemachine.NewQueue("http", 16, nil)

	session, err := service.NewRoutingSession(service.Collaborators{
		StateMachine: queue,
		Bluetooth:    bt,
		WiredHeadset: headset,
		Dock:         dock,
		Ringtone:     ringtone.NewPlayer(),
	})
	require.NoError(t, err)

	repo := persistence.NewYAMLConfigRepository(filepath.Join(t.TempDir(), "routesim.yaml"), config.Default)
	srv := NewServer(session, scenario.NewPlayer(headset, dock, bt), service.NewConfigService(repo), nil)
	return srv.Handler(), queue
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func queued(t *testing.T, q *statemachine.Queue) []model.Intent {
	t.Helper()
	q.Close()
	var got []model.Intent
	require.NoError(t, q.Run(context.Background(), func(_ context.Context, m model.Message) error {
		got = append(got, m.Intent)
		return nil
	}))
	return got
}

func TestServer_Events(t *testing.T) {
	h, q := newTestServer(t)

	assert.Equal(t, http.StatusAccepted, do(h, "POST", "/events/headset", `{"plugged":true}`).Code)
	assert.Equal(t, http.StatusAccepted, do(h, "POST", "/events/dock", `{"docked":false}`).Code)

	rec := do(h, "POST", "/events/bluetooth", `{"event":"audio_connected","address":"30:00:00:00:00:01"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var status service.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.BluetoothAudioOn)
	assert.True(t, status.HearingAidOn)
	assert.Equal(t, model.DeviceKindHearingAid, status.ConnectedKind)

	assert.Equal(t, []model.Intent{
		model.IntentConnectWiredHeadset,
		model.IntentDisconnectDock,
		model.IntentBtAudioConnected,
	}, queued(t, q))
}

func TestServer_BadRequests(t *testing.T) {
	h, _ := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, do(h, "POST", "/events/headset", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, "POST", "/events/dock", `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, "POST", "/events/bluetooth", `{"event":"pair"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		do(h, "POST", "/events/bluetooth", `{"event":"audio_connecting","address":"ff"}`).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h, "GET", "/events/dock", "").Code)
}

func TestServer_Status(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(h, "GET", "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bluetooth_audio_on":false,"hearing_aid_on":false,"le_audio_on":false}`, rec.Body.String())
}

func TestServer_Config(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(h, "GET", "/config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cfg model.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, 64, cfg.QueueCapacity)

	cfg.QueueCapacity = 0
	body, _ := json.Marshal(cfg)
	assert.Equal(t, http.StatusBadRequest, do(h, "PUT", "/config", string(body)).Code)

	cfg.QueueCapacity = 128
	body, _ = json.Marshal(cfg)
	assert.Equal(t, http.StatusNoContent, do(h, "PUT", "/config", string(body)).Code)

	rec = do(h, "GET", "/config", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, 128, cfg.QueueCapacity)
}

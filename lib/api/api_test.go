package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajputrajat/min-gl/lib/config"
	"github.com/rajputrajat/min-gl/lib/display"
)

func testApi() *Api {
	return New(&config.ApiCfg{Bind: "127.0.0.1:0"})
}

func TestStatsEndpointServesJson(t *testing.T) {
	a := testApi()
	a.Stats.Update()

	rec := httptest.NewRecorder()
	a.getStats(rec, httptest.NewRequest("GET", "/api/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got, "uptime")
	assert.Contains(t, got, "fps")
	assert.EqualValues(t, 1, got["frames"])
}

func TestKillEndpointFlipsTheFlag(t *testing.T) {
	a := testApi()
	assert.False(t, a.KillRequested())

	rec := httptest.NewRecorder()
	a.suicide(rec, httptest.NewRequest("POST", "/api/kill", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, a.KillRequested())
}

func TestConfigEndpointNeedsAPublishedConfig(t *testing.T) {
	a := testApi()

	rec := httptest.NewRecorder()
	a.getConfig(rec, httptest.NewRequest("GET", "/api/config", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	a.SetConfig(&config.Config{
		Window:      &config.WindowCfg{Width: 640, Height: 360, Title: "from test"},
		ClearColour: "#000000ff",
	})
	rec = httptest.NewRecorder()
	a.getConfig(rec, httptest.NewRequest("GET", "/api/config", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "from test")
}

func TestPublishEventWithoutSubscribersDoesNothing(t *testing.T) {
	a := testApi()
	a.PublishEvent(display.CloseEvent{})
}

func TestWebsocketStreamsPublishedEvents(t *testing.T) {
	a := testApi()
	srv := httptest.NewServer(http.HandlerFunc(a.handleWebsocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer func() {
		_ = ws.Close()
	}()

	require.Eventually(t, func() bool {
		a.wsMu.Lock()
		defer a.wsMu.Unlock()
		return len(a.wsClients) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, a.Stats.Snapshot().WsClients)

	a.PublishEvent(display.KeyEvent{Key: glfw.KeyEscape, Action: glfw.Press})

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, msg, err := ws.ReadMessage()
	require.NoError(t, err)

	var packet struct {
		Event string         `json:"event"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg, &packet))
	assert.Equal(t, "key", packet.Event)
	assert.EqualValues(t, glfw.KeyEscape, packet.Data["Key"])
}

package simulate

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/scenescope/internal/bridge"
)

func TestSnapshotOrder(t *testing.T) {
	w := NewWorld(1)
	msgs := w.Snapshot()
	require.GreaterOrEqual(t, len(msgs), 8)
	assert.Equal(t, bridge.KindLoad, msgs[0].Type)
	assert.Equal(t, bridge.KindObserve, msgs[1].Type)
	assert.Equal(t, []string{w.Renderer()}, msgs[1].UUIDs)
	assert.Contains(t, w.Renderer(), "renderer")
	assert.Equal(t, "scenes", msgs[2].ResourceType)
	require.Len(t, msgs[2].Entities, 2)
	assert.Equal(t, "Main", msgs[2].Entities[0].Name)
	assert.Equal(t, bridge.KindRenderingInfoUpdate, msgs[len(msgs)-1].Type)
}

func TestSnapshotFeedsCache(t *testing.T) {
	w := NewWorld(1)
	c := bridge.NewCache()
	for _, m := range w.Snapshot() {
		c.Apply(m)
	}
	materials := c.ResourcesOverview("materials")
	require.Len(t, materials, 3)

	brick := materials[0]
	assert.Equal(t, "Brick", brick.Name)
	set := c.EntityAndDependencies(brick.UUID)
	assert.Len(t, set, 3, "material plus its two texture maps")

	scene := w.Scenes()[0]
	g, ok := c.SceneGraph(scene)
	require.True(t, ok)
	assert.Equal(t, "Props", g.Children[0].Name)

	_, ok = c.RenderingInfo(w.Renderer())
	assert.True(t, ok)
}

func TestSetProperty(t *testing.T) {
	w := NewWorld(1)
	c := bridge.NewCache()
	for _, m := range w.Snapshot() {
		c.Apply(m)
	}
	id := c.ResourcesOverview("materials")[0].UUID

	msg, err := w.SetProperty(id, "side", 1)
	require.NoError(t, err)
	assert.Equal(t, bridge.KindEntityUpdate, msg.Type)
	assert.Equal(t, 1, msg.Entity.Props["side"])

	msg, err = w.SetProperty(w.Renderer(), "toneMapping", 0)
	require.NoError(t, err)
	assert.Equal(t, bridge.KindRendererUpdate, msg.Type)

	_, err = w.SetProperty("nope", "side", 1)
	require.ErrorIs(t, err, ErrUnknownEntity)
}

func TestTickAdvancesFrame(t *testing.T) {
	w := NewWorld(1)
	first := w.Tick()
	second := w.Tick()
	require.Len(t, first, 2)
	assert.Equal(t, bridge.KindRendererUpdate, first[0].Type)
	assert.Equal(t, 1, first[1].Info.Render.Frame)
	assert.Equal(t, 2, second[1].Info.Render.Frame)
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(NewServer(Config{}).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/bridge"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readUntil(t *testing.T, ws *websocket.Conn, match func(bridge.Message) bool) bridge.Message {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		_, data, err := ws.ReadMessage()
		require.NoError(t, err)
		msg, err := bridge.Decode(data)
		require.NoError(t, err)
		if match(msg) {
			return msg
		}
	}
}

func TestBridgeCommands(t *testing.T) {
	s := NewServer(Config{Interval: time.Hour})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()
	ws := dial(t, srv)

	readUntil(t, ws, func(m bridge.Message) bool { return m.Type == bridge.KindRenderingInfoUpdate })

	scene := s.World().Scenes()[0]
	cmd, err := bridge.Encode(bridge.Message{Type: bridge.CommandUpdateProperty, UUID: scene, Property: "visible", Value: false})
	require.NoError(t, err)
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, cmd))
	got := readUntil(t, ws, func(m bridge.Message) bool { return m.Type == bridge.KindEntityUpdate })
	assert.Equal(t, scene, got.UUID)
	assert.Equal(t, false, got.Entity.Props["visible"])

	cmd, err = bridge.Encode(bridge.Message{Type: bridge.CommandUpdateProperty, UUID: "missing", Property: "visible", Value: true})
	require.NoError(t, err)
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, cmd))
	got = readUntil(t, ws, func(m bridge.Message) bool { return m.Type == bridge.KindError })
	assert.Contains(t, got.Message, "unknown entity")

	cmd, err = bridge.Encode(bridge.Message{Type: bridge.CommandReload})
	require.NoError(t, err)
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, cmd))
	readUntil(t, ws, func(m bridge.Message) bool { return m.Type == bridge.KindLoad })
}

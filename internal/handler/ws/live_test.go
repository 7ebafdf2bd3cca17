package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	xlogger "GodSignal/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPages struct {
	mu    sync.Mutex
	names []string
}

func (p *countingPages) Page(_ context.Context, name string) interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.names = append(p.names, name)
	return map[string]int{"run": len(p.names)}
}

func newLiveServer(t *testing.T, pages Snapshotter, interval time.Duration) string {
	t.Helper()
	e := echo.New()
	NewLiveHandler(xlogger.Nop(), pages, interval).RegisterRoutes(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestLiveFeedPushesInitialAndPeriodicSnapshots(t *testing.T) {
	pages := &countingPages{}
	url := newLiveServer(t, pages, 50*time.Millisecond)

	conn, _, err := websocket.DefaultDialer.Dial(url+"/ws/live?page=whales", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for want := 1; want <= 3; want++ {
		var frame struct {
			Page string         `json:"page"`
			Seq  int            `json:"seq"`
			Data map[string]int `json:"data"`
		}
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(msg, &frame))
		assert.Equal(t, "whales", frame.Page)
		assert.Equal(t, want, frame.Seq)
		assert.Equal(t, want, frame.Data["run"])
	}
}

func TestLiveFeedDefaultsToDashboard(t *testing.T) {
	pages := &countingPages{}
	url := newLiveServer(t, pages, time.Hour)

	conn, _, err := websocket.DefaultDialer.Dial(url+"/ws/live", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), `"page":"dashboard"`)
}

func TestLiveFeedRejectsUnknownPage(t *testing.T) {
	url := newLiveServer(t, &countingPages{}, time.Hour)

	_, resp, err := websocket.DefaultDialer.Dial(url+"/ws/live?page=portfolio", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLiveFeedStopsAfterClientCloses(t *testing.T) {
	pages := &countingPages{}
	url := newLiveServer(t, pages, 20*time.Millisecond)

	conn, _, err := websocket.DefaultDialer.Dial(url+"/ws/live?page=signals", nil)
	require.NoError(t, err)
	_, _, err = conn.ReadMessage()
	require.NoError(t, err)
	conn.Close()

	time.Sleep(100 * time.Millisecond)
	pages.mu.Lock()
	settled := len(pages.names)
	pages.mu.Unlock()

	time.Sleep(100 * time.Millisecond)
	pages.mu.Lock()
	defer pages.mu.Unlock()
	assert.Equal(t, settled, len(pages.names))
}

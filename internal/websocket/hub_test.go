package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub, desktopID string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, desktopID)
		hub.Register <- client
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_PublishReachesOnlyOwnDesktop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	alpha := dial(t, newTestServer(t, hub, "alpha"))
	beta := dial(t, newTestServer(t, hub, "beta"))

	require.Eventually(t, func() bool {
		return hub.ClientCount("alpha") == 1 && hub.ClientCount("beta") == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.PublishEvent("alpha", []byte(`{"event_type":"file_created"}`))

	alpha.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := alpha.ReadMessage()
	require.NoError(t, err)
	require.JSONEq(t, `{"event_type":"file_created"}`, string(msg))

	beta.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = beta.ReadMessage()
	require.Error(t, err)
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dial(t, newTestServer(t, hub, "gamma"))
	require.Eventually(t, func() bool { return hub.ClientCount("gamma") == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount("gamma") == 0 }, 2*time.Second, 10*time.Millisecond)

	// publikacja do pulpitu bez klientów nie może panikować
	hub.PublishEvent("gamma", []byte("{}"))
}

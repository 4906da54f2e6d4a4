package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialAndRegister mở 1 cặp connection client/server và đăng ký
// connection phía server vào hub cho userID
func dialAndRegister(t *testing.T, hub *Hub, userID string) (client, server *websocket.Conn) {
	t.Helper()

	serverConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientConn.Close() })

	serverConn := <-serverConns
	hub.RegisterUser(userID, serverConn)
	return clientConn, serverConn
}

func readMessage(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	return msg
}

func newTestHub() *Hub {
	return &Hub{Clients: make(map[string]map[*websocket.Conn]*Client)}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := newTestHub()

	// user-1 mở 2 tab, user-2 mở 1 tab
	tab1, _ := dialAndRegister(t, hub, "user-1")
	tab2, _ := dialAndRegister(t, hub, "user-1")
	other, _ := dialAndRegister(t, hub, "user-2")

	stats := hub.GetStats()
	assert.Equal(t, 2, stats["users"])
	assert.Equal(t, 3, stats["connections"])

	hub.BroadcastToUser("user-1", websocket.TextMessage, []byte("session saved"))

	assert.Equal(t, "session saved", string(readMessage(t, tab1)))
	assert.Equal(t, "session saved", string(readMessage(t, tab2)))

	// user-2 không được nhận event của user-1
	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)
}

func TestHub_Unregister(t *testing.T) {
	hub := newTestHub()

	tab1, conn1 := dialAndRegister(t, hub, "user-1")
	tab2, conn2 := dialAndRegister(t, hub, "user-1")

	hub.UnregisterUser("user-1", conn1)

	// Send bị close -> writePump phải đóng connection
	tab1.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := tab1.ReadMessage()
	assert.Error(t, err)

	// Tab còn lại vẫn nhận event bình thường
	hub.BroadcastToUser("user-1", websocket.TextMessage, []byte("still here"))
	assert.Equal(t, "still here", string(readMessage(t, tab2)))

	stats := hub.GetStats()
	assert.Equal(t, 1, stats["connections"])

	hub.UnregisterUser("user-1", conn2)
	stats = hub.GetStats()
	assert.Equal(t, 0, stats["users"])
	assert.Equal(t, 0, stats["connections"])
}

// Đăng ký rồi gỡ ngay lập tức nhiều lần: connection nào cũng phải được
// đóng hẳn, không kẹt goroutine nào
func TestHub_RegisterUnregisterChurn(t *testing.T) {
	hub := newTestHub()

	for i := 0; i < 20; i++ {
		client, server := dialAndRegister(t, hub, "user-1")
		hub.UnregisterUser("user-1", server)

		client.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, _, err := client.ReadMessage()
		assert.Error(t, err)
	}

	assert.Equal(t, 0, hub.GetStats()["connections"])
}

func TestSendProgressUpdate(t *testing.T) {
	client, server := dialAndRegister(t, &H, "progress-user")
	defer H.UnregisterUser("progress-user", server)

	SendProgressUpdate("progress-user", 3, 18)

	var update ProgressUpdate
	require.NoError(t, json.Unmarshal(readMessage(t, client), &update))
	assert.Equal(t, "progress_saved", update.Type)
	assert.Equal(t, 3, update.SessionID)
	assert.Equal(t, 18, update.Score)
}

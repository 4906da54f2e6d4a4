package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	// Theo từng userID: 1 user có thể mở nhiều tab
	Clients map[string]map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[string]map[*websocket.Conn]*Client),
}

// Struct gửi sự kiện hoàn thành session cho các tab khác của user
type ProgressUpdate struct {
	Type      string `json:"type"`
	SessionID int    `json:"session_id"`
	Score     int    `json:"score"`
}

// RegisterUser đăng ký connection theo userID riêng
func (h *Hub) RegisterUser(userID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.Clients[userID]; !ok {
		h.Clients[userID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.Clients[userID][conn] = client

	go client.writePump()
}

// BroadcastToUser gửi message tới mọi connection của 1 user
func (h *Hub) BroadcastToUser(userID string, messageType int, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.Clients[userID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// SendProgressUpdate báo cho các tab đang mở của user là session vừa lưu xong.
// Ghi đè vẫn là last-write-wins, event chỉ giúp tab kia refresh.
func SendProgressUpdate(userID string, sessionID int, score int) {
	update := ProgressUpdate{
		Type:      "progress_saved",
		SessionID: sessionID,
		Score:     score,
	}
	data, err := json.Marshal(update)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.BroadcastToUser(userID, websocket.TextMessage, data)
}

// UnregisterUser gỡ 1 connection của user
func (h *Hub) UnregisterUser(userID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Clients[userID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Clients, userID)
		}
	}
}

// GetStats trả số liệu connection cho health check
func (h *Hub) GetStats() map[string]interface{} {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	totalConns := 0
	for _, clients := range h.Clients {
		totalConns += len(clients)
	}

	return map[string]interface{}{
		"users":       len(h.Clients),
		"connections": totalConns,
	}
}

// Write pump riêng theo connection. Nhận thẳng *Client từ RegisterUser,
// không tra lại map để khỏi đua với UnregisterUser.
func (c *Client) writePump() {
	defer func() {
		c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
		c.Conn.Close()
	}()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

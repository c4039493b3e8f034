package models

import "time"

// Message types sent from server to client
const (
	MessageTypeRowUpdate = "row_update"
	MessageTypeHeartbeat = "heartbeat"
	MessageTypeError     = "error"
)

// Message types sent from client to server
const (
	MessageTypeSubscribe   = "subscribe"
	MessageTypeUnsubscribe = "unsubscribe"
)

// ServerMessage is the envelope for all server-to-client messages
type ServerMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// ClientMessage is the envelope for all client-to-server messages
type ClientMessage struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// SubscriptionFilter narrows which row updates a client receives.
// Empty filter = receive everything.
type SubscriptionFilter struct {
	Books  []string `json:"books,omitempty"`
	Sports []string `json:"sports,omitempty"`
}

// ErrorMessage is the payload for error messages
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConnectionStats describes one client connection
type ConnectionStats struct {
	ClientID          string    `json:"client_id"`
	ConnectedAt       time.Time `json:"connected_at"`
	MessagesSent      int64     `json:"messages_sent"`
	MessagesReceived  int64     `json:"messages_received"`
	LastMessageAt     time.Time `json:"last_message_at"`
	BufferSize        int       `json:"buffer_size"`
	BufferUtilization float64   `json:"buffer_utilization"`
}

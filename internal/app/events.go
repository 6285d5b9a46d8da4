package app

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
)

// Server-to-client event names. Client-to-server events reuse the same
// names; the transport adapter owns that dispatch.
const (
	EventJoinedRoom         = "joined-room"
	EventUserJoined         = "user-joined"
	EventUserLeft           = "user-left"
	EventRoomFull           = "room-full"
	EventSignal             = "signal"
	EventChatMessage        = "chat-message"
	EventScreenShareStarted = "screen-share-started"
	EventScreenShareStopped = "screen-share-stopped"
	EventToggleMic          = "toggle-mic"
	EventToggleCamera       = "toggle-camera"
	EventDrawStroke         = "draw-stroke"
	EventClearBoard         = "clear-board"
	EventError              = "error"
)

// AISenderID is the reserved sender identity for synthetic chat replies.
const AISenderID = "AI"

// AISentinel prefixes chat messages addressed to the assistant.
const AISentinel = "@"

type JoinedRoom struct {
	Type        string             `json:"type"`
	IsInitiator bool               `json:"isInitiator"`
	UserCount   int                `json:"userCount"`
	MediaPeers  int                `json:"mediaPeers"`
	ICEServers  []webrtc.ICEServer `json:"iceServers,omitempty"`
}

type UserJoined struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	UserCount int    `json:"userCount"`
}

type UserLeft struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	UserCount int    `json:"userCount"`
}

type RoomFull struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SignalEvent carries an opaque negotiation payload (session description
// or ICE candidate). The hub never parses Signal; it is pure cargo.
type SignalEvent struct {
	Type     string          `json:"type"`
	SenderID string          `json:"senderId"`
	Signal   json.RawMessage `json:"signal"`
}

type ChatMessage struct {
	Type     string `json:"type"`
	SenderID string `json:"senderId"`
	Message  string `json:"message"`
	Time     string `json:"time"`
	IsAI     bool   `json:"isAI,omitempty"`
}

type ScreenShare struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type ToggleEvent struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	Enabled bool   `json:"enabled"`
}

type BoardEvent struct {
	Type     string          `json:"type"`
	SenderID string          `json:"senderId"`
	Stroke   json.RawMessage `json:"stroke,omitempty"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

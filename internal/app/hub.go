package app

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/core"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/domain"
)

const responderTimeout = 15 * time.Second

// Hub coordinates admission, signal relay, room-scoped fan-out and
// disconnect cleanup. It owns the membership table; nothing outside this
// package mutates it. Fan-out scope always comes from the table, never
// from a client-supplied room id.
type Hub struct {
	Sessions  *Registry
	Table     *core.Table
	Pending   *core.PendingBuffer
	Responder core.Responder

	// Capacity bounds admission; MediaPeers tells clients how many of the
	// occupants actually negotiate media. The relay itself is agnostic: it
	// fans out to every other occupant.
	Capacity   int
	MediaPeers int
	ICEServers []webrtc.ICEServer
}

// Join admits the connection into the room or rejects it with a
// room-full event. A malformed room id is reported to the requester only
// and mutates nothing.
func (h *Hub) Join(sid core.SessionID, rawRoom string) {
	room, err := domain.NewRoomID(rawRoom)
	if err != nil {
		log.Warn().Err(err).Str("module", "app.hub").Str("sid", string(sid)).Msg("bad room id")
		h.sendTo(sid, ErrorEvent{Type: EventError, Message: "invalid room id"})
		return
	}

	res, err := h.Table.Join(sid, room, h.Capacity)
	if err != nil {
		if errors.Is(err, core.ErrRoomFull) {
			h.sendTo(sid, RoomFull{Type: EventRoomFull, Message: "room is full"})
			return
		}
		log.Error().Err(err).Str("module", "app.hub").Str("sid", string(sid)).Msg("admission failed")
		h.sendTo(sid, ErrorEvent{Type: EventError, Message: "join failed"})
		return
	}

	h.sendTo(sid, JoinedRoom{
		Type:        EventJoinedRoom,
		IsInitiator: res.IsInitiator,
		UserCount:   res.Count,
		MediaPeers:  h.MediaPeers,
		ICEServers:  h.ICEServers,
	})
	if res.Count > 1 {
		h.broadcast(room, sid, UserJoined{Type: EventUserJoined, UserID: string(sid), UserCount: res.Count})
	}

	for _, st := range h.Pending.Drain(room) {
		if st.From == sid {
			continue
		}
		h.sendTo(sid, SignalEvent{Type: EventSignal, SenderID: string(st.From), Signal: json.RawMessage(st.Data)})
	}
}

// Relay forwards the opaque payload verbatim to every other occupant of
// the sender's room. An unbound sender is a silent no-op; a lone sender's
// payload is stashed for the next joiner.
func (h *Hub) Relay(sid core.SessionID, signal json.RawMessage) {
	room, ok := h.Table.RoomOf(sid)
	if !ok {
		return
	}
	ev := SignalEvent{Type: EventSignal, SenderID: string(sid), Signal: signal}
	if h.broadcast(room, sid, ev) == 0 {
		h.Pending.Stash(room, sid, core.Frame(signal))
	}
}

// Chat fans the message out to all occupants, the sender included (keeps
// a sender's other tabs consistent). An assistant-addressed message also
// kicks off a synthetic reply, strictly after and independent of the
// human broadcast.
func (h *Hub) Chat(sid core.SessionID, message string, isAI bool) {
	room, ok := h.Table.RoomOf(sid)
	if !ok {
		return
	}
	h.broadcast(room, "", ChatMessage{
		Type:     EventChatMessage,
		SenderID: string(sid),
		Message:  message,
		Time:     time.Now().Format(time.RFC3339),
	})

	if isAI && strings.HasPrefix(message, AISentinel) && h.Responder != nil {
		go h.respond(room, strings.TrimPrefix(message, AISentinel))
	}
}

func (h *Hub) respond(room domain.RoomID, prompt string) {
	ctx, cancel := context.WithTimeout(context.Background(), responderTimeout)
	defer cancel()

	reply, err := h.Responder.Respond(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("module", "app.hub").Str("room", string(room)).Msg("responder failed")
		return
	}
	h.broadcast(room, "", ChatMessage{
		Type:     EventChatMessage,
		SenderID: AISenderID,
		Message:  reply,
		Time:     time.Now().Format(time.RFC3339),
		IsAI:     true,
	})
}

// ScreenShare announces the sender's share state to the other occupants.
func (h *Hub) ScreenShare(sid core.SessionID, started bool) {
	room, ok := h.Table.RoomOf(sid)
	if !ok {
		return
	}
	name := EventScreenShareStopped
	if started {
		name = EventScreenShareStarted
	}
	h.broadcast(room, sid, ScreenShare{Type: name, UserID: string(sid)})
}

// Toggle announces a mic or camera state change to the other occupants.
func (h *Hub) Toggle(sid core.SessionID, event string, enabled bool) {
	room, ok := h.Table.RoomOf(sid)
	if !ok {
		return
	}
	h.broadcast(room, sid, ToggleEvent{Type: event, UserID: string(sid), Enabled: enabled})
}

// Board relays a drawing event to the other occupants. The originator
// already rendered locally, so it is excluded.
func (h *Hub) Board(sid core.SessionID, event string, stroke json.RawMessage) {
	room, ok := h.Table.RoomOf(sid)
	if !ok {
		return
	}
	h.broadcast(room, sid, BoardEvent{Type: event, SenderID: string(sid), Stroke: stroke})
}

// Disconnect reacts to a transport-level close: drop the registry entry,
// remove the table binding and tell the remaining occupants. Safe to run
// twice; the second call finds no binding and no-ops.
func (h *Hub) Disconnect(sid core.SessionID) {
	h.Sessions.Cancel(sid)
	h.Sessions.Unbind(sid)

	room, remaining, ok := h.Table.Leave(sid)
	if !ok {
		return
	}
	log.Info().Str("module", "app.hub").Str("sid", string(sid)).Str("room", string(room)).Int("remaining", remaining).Msg("left room")
	if remaining == 0 {
		h.Pending.Forget(room)
		return
	}
	h.broadcast(room, sid, UserLeft{Type: EventUserLeft, UserID: string(sid), UserCount: remaining})
}

// Rooms exposes live occupancy for the HTTP listing.
func (h *Hub) Rooms() []core.RoomInfo {
	return h.Table.Rooms()
}

// broadcast sends v to every occupant of room except exclude and reports
// how many connections it reached.
func (h *Hub) broadcast(room domain.RoomID, exclude core.SessionID, v any) int {
	sent := 0
	for _, sid := range h.Table.Occupants(room) {
		if sid == exclude {
			continue
		}
		if h.sendTo(sid, v) {
			sent++
		}
	}
	return sent
}

func (h *Hub) sendTo(sid core.SessionID, v any) bool {
	conn, ok := h.Sessions.Get(sid)
	if !ok {
		return false
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.hub").Msg("marshal event")
		return false
	}
	if err := conn.TrySend(core.Frame(b)); err != nil {
		log.Warn().Err(err).Str("module", "app.hub").Str("sid", string(sid)).Msg("send failed")
		return false
	}
	return true
}

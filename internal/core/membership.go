package core

import (
	"errors"
	"sync"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/domain"
	"github.com/rs/zerolog/log"
)

var ErrRoomFull = errors.New("room full")

// JoinResult reports the outcome of a successful admission.
type JoinResult struct {
	// IsInitiator is true iff this join observed occupancy 0.
	IsInitiator bool
	// Count is the occupancy after the join.
	Count int
}

// RoomInfo is a read-only occupancy view for APIs.
type RoomInfo struct {
	ID        domain.RoomID `json:"id"`
	Occupants int           `json:"occupants"`
}

// Table is the membership table: connection -> room plus a per-room index.
// It is the single source of truth for occupancy; transport-level room
// bookkeeping is never consulted. One mutex spans the whole
// check-then-mutate admission sequence, so two concurrent joins can never
// both observe occupancy below capacity and overfill the room.
type Table struct {
	mu     sync.RWMutex
	byConn map[SessionID]domain.RoomID
	byRoom map[domain.RoomID]map[SessionID]struct{}
}

func NewTable() *Table {
	return &Table{
		byConn: make(map[SessionID]domain.RoomID),
		byRoom: make(map[domain.RoomID]map[SessionID]struct{}),
	}
}

// Join runs the full admission sequence atomically: implicit unbind of a
// stale binding, capacity check, insert, initiator designation. A rejected
// join mutates nothing in the target room; the stale binding is still
// cleared (rejoin means "leave old room, then attempt new join").
func (t *Table) Join(sid SessionID, room domain.RoomID, capacity int) (JoinResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.byConn[sid]; ok {
		t.unbindLocked(sid, prev)
	}

	occ := len(t.byRoom[room])
	if occ >= capacity {
		log.Info().Str("module", "core.table").Str("sid", string(sid)).Str("room", string(room)).Int("occupants", occ).Msg("join rejected, room full")
		return JoinResult{}, ErrRoomFull
	}

	set, ok := t.byRoom[room]
	if !ok {
		set = make(map[SessionID]struct{})
		t.byRoom[room] = set
	}
	set[sid] = struct{}{}
	t.byConn[sid] = room
	log.Info().Str("module", "core.table").Str("sid", string(sid)).Str("room", string(room)).Int("occupants", occ+1).Msg("joined")
	return JoinResult{IsInitiator: occ == 0, Count: occ + 1}, nil
}

// Leave removes the connection's binding and recounts the room in one
// step. Idempotent: a second call for the same connection finds no
// binding and reports ok=false.
func (t *Table) Leave(sid SessionID) (room domain.RoomID, remaining int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	room, ok = t.byConn[sid]
	if !ok {
		return "", 0, false
	}
	t.unbindLocked(sid, room)
	return room, len(t.byRoom[room]), true
}

// unbindLocked removes sid from both indexes. An empty room disappears
// entirely: absence from the table is non-existence.
func (t *Table) unbindLocked(sid SessionID, room domain.RoomID) {
	delete(t.byConn, sid)
	if set, ok := t.byRoom[room]; ok {
		delete(set, sid)
		if len(set) == 0 {
			delete(t.byRoom, room)
		}
	}
}

func (t *Table) RoomOf(sid SessionID) (domain.RoomID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	room, ok := t.byConn[sid]
	return room, ok
}

func (t *Table) Count(room domain.RoomID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byRoom[room])
}

// Occupants returns a snapshot of the room's members.
func (t *Table) Occupants(room domain.RoomID) []SessionID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]SessionID, 0, len(t.byRoom[room]))
	for sid := range t.byRoom[room] {
		out = append(out, sid)
	}
	return out
}

// Rooms lists live rooms with their occupancy.
func (t *Table) Rooms() []RoomInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]RoomInfo, 0, len(t.byRoom))
	for room, set := range t.byRoom {
		out = append(out, RoomInfo{ID: room, Occupants: len(set)})
	}
	return out
}

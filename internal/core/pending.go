package core

import (
	"sync"
	"time"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/domain"
)

// Stashed is a relayed payload that was held for a peer who had not
// joined yet.
type Stashed struct {
	From SessionID
	Data Frame
}

type pendingEntry struct {
	from SessionID
	data Frame
	at   time.Time
}

// PendingBuffer holds signals relayed into a room with no other occupant,
// so an offer sent just before the peer joins is not lost. Bounded per
// room (oldest dropped first) and short-lived. Size 0 disables stashing;
// relay-to-empty-room is then a plain silent no-op.
type PendingBuffer struct {
	mu     sync.Mutex
	size   int
	ttl    time.Duration
	byRoom map[domain.RoomID][]pendingEntry
}

func NewPendingBuffer(size int, ttl time.Duration) *PendingBuffer {
	return &PendingBuffer{
		size:   size,
		ttl:    ttl,
		byRoom: make(map[domain.RoomID][]pendingEntry),
	}
}

func (b *PendingBuffer) Stash(room domain.RoomID, from SessionID, data Frame) {
	if b.size <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.freshLocked(room)
	if len(entries) >= b.size {
		entries = entries[len(entries)-b.size+1:]
	}
	b.byRoom[room] = append(entries, pendingEntry{from: from, data: data, at: time.Now()})
}

// Drain returns the room's unexpired stash in arrival order and clears it.
func (b *PendingBuffer) Drain(room domain.RoomID) []Stashed {
	if b.size <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.freshLocked(room)
	delete(b.byRoom, room)
	if len(entries) == 0 {
		return nil
	}
	out := make([]Stashed, 0, len(entries))
	for _, e := range entries {
		out = append(out, Stashed{From: e.from, Data: e.data})
	}
	return out
}

// Forget drops the stash of a room that no longer exists.
func (b *PendingBuffer) Forget(room domain.RoomID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.byRoom, room)
}

func (b *PendingBuffer) freshLocked(room domain.RoomID) []pendingEntry {
	entries := b.byRoom[room]
	if b.ttl <= 0 {
		return entries
	}
	cutoff := time.Now().Add(-b.ttl)
	fresh := entries[:0]
	for _, e := range entries {
		if e.at.After(cutoff) {
			fresh = append(fresh, e)
		}
	}
	return fresh
}

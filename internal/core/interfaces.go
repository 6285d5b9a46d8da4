package core

import (
	"context"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/domain"
)

// Frame is a raw outbound payload.
type Frame []byte

// SessionID identifies a single live transport connection. Opaque and
// server-assigned; a connection belongs to at most one room at a time.
type SessionID string

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// RoomResolver decodes an opaque join credential (a signed token embedded
// in a shareable link) into a validated room identifier. Signature and
// expiry checks happen behind this boundary; the hub never sees them.
type RoomResolver interface {
	Resolve(ctx context.Context, credential string) (domain.RoomID, error)
}

// Responder produces a synthetic chat reply for messages addressed to the
// assistant. Best-effort: callers must broadcast the human message first
// and must not wait on this.
type Responder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

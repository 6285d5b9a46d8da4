// Package domain contains entity without logic, just meta-data
package domain

import "errors"

const MaxRoomIDLen = 64

var (
	ErrRoomIDEmpty   = errors.New("room id empty")
	ErrRoomIDTooLong = errors.New("room id too long")
)

// RoomID identifies a logical meeting. A room is not a persisted entity;
// it exists only while at least one connection is bound to it.
type RoomID string

// NewRoomID validates the application-supplied identifier before it
// touches any shared state.
func NewRoomID(raw string) (RoomID, error) {
	if len(raw) == 0 {
		return "", ErrRoomIDEmpty
	}
	if len(raw) > MaxRoomIDLen {
		return "", ErrRoomIDTooLong
	}
	return RoomID(raw), nil
}

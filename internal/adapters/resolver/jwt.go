// Package resolver turns signed shareable join links into room
// identifiers. The hub only sees the RoomResolver interface.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/domain"
)

var ErrInvalidLink = errors.New("invalid join link")

const roomClaim = "roomId"

// LinkResolver validates HMAC-signed join tokens.
type LinkResolver struct {
	secret []byte
}

func NewLinkResolver(secret string) *LinkResolver {
	return &LinkResolver{secret: []byte(secret)}
}

// Resolve checks signature and expiry server-side and returns the room
// identifier the credential references. Any failure leaves room state
// untouched by construction; this layer holds no state at all.
func (r *LinkResolver) Resolve(_ context.Context, credential string) (domain.RoomID, error) {
	tok, err := jwt.Parse(credential,
		func(t *jwt.Token) (any, error) { return r.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidLink
	}
	raw, _ := claims[roomClaim].(string)
	room, err := domain.NewRoomID(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}
	return room, nil
}

// Sign issues a shareable join credential for the room. The marketplace
// backend calls this when a session is booked.
func (r *LinkResolver) Sign(room domain.RoomID, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		roomClaim: string(room),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	return tok.SignedString(r.secret)
}

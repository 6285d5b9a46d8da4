package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestResolveValidLink(t *testing.T) {
	r := NewLinkResolver("secret")

	tok, err := r.Sign("abc", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	room, err := r.Resolve(context.Background(), tok)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if room != "abc" {
		t.Errorf("expected room abc, got %q", room)
	}
}

func TestResolveExpiredLink(t *testing.T) {
	r := NewLinkResolver("secret")

	tok, err := r.Sign("abc", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := r.Resolve(context.Background(), tok); !errors.Is(err, ErrInvalidLink) {
		t.Errorf("expected ErrInvalidLink for expired token, got %v", err)
	}
}

func TestResolveWrongSecret(t *testing.T) {
	tok, err := NewLinkResolver("one").Sign("abc", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewLinkResolver("two").Resolve(context.Background(), tok); !errors.Is(err, ErrInvalidLink) {
		t.Errorf("expected ErrInvalidLink for wrong secret, got %v", err)
	}
}

func TestResolveMissingRoomClaim(t *testing.T) {
	secret := []byte("secret")
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	tok, err := raw.SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewLinkResolver("secret").Resolve(context.Background(), tok); !errors.Is(err, ErrInvalidLink) {
		t.Errorf("expected ErrInvalidLink for missing room claim, got %v", err)
	}
}

func TestResolveGarbage(t *testing.T) {
	if _, err := NewLinkResolver("secret").Resolve(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidLink) {
		t.Errorf("expected ErrInvalidLink for garbage, got %v", err)
	}
}

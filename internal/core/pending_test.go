package core

import (
	"testing"
	"time"
)

func TestStashAndDrain(t *testing.T) {
	buf := NewPendingBuffer(4, time.Minute)

	buf.Stash("abc", "c1", Frame(`{"sdp":"offer"}`))
	buf.Stash("abc", "c1", Frame(`{"candidate":"x"}`))

	out := buf.Drain("abc")
	if len(out) != 2 {
		t.Fatalf("expected 2 stashed signals, got %d", len(out))
	}
	if string(out[0].Data) != `{"sdp":"offer"}` {
		t.Errorf("expected arrival order preserved, got %s", out[0].Data)
	}
	if out[0].From != "c1" {
		t.Errorf("expected sender c1, got %s", out[0].From)
	}

	if again := buf.Drain("abc"); again != nil {
		t.Errorf("expected drain to clear the stash, got %d entries", len(again))
	}
}

func TestStashBounded(t *testing.T) {
	buf := NewPendingBuffer(2, time.Minute)

	buf.Stash("abc", "c1", Frame("one"))
	buf.Stash("abc", "c1", Frame("two"))
	buf.Stash("abc", "c1", Frame("three"))

	out := buf.Drain("abc")
	if len(out) != 2 {
		t.Fatalf("expected 2 entries after overflow, got %d", len(out))
	}
	if string(out[0].Data) != "two" || string(out[1].Data) != "three" {
		t.Errorf("expected oldest entry dropped, got %s, %s", out[0].Data, out[1].Data)
	}
}

func TestStashExpires(t *testing.T) {
	buf := NewPendingBuffer(4, 10*time.Millisecond)

	buf.Stash("abc", "c1", Frame("stale"))
	time.Sleep(25 * time.Millisecond)

	if out := buf.Drain("abc"); out != nil {
		t.Errorf("expected expired stash to be empty, got %d entries", len(out))
	}
}

func TestStashDisabled(t *testing.T) {
	buf := NewPendingBuffer(0, time.Minute)

	buf.Stash("abc", "c1", Frame("dropped"))
	if out := buf.Drain("abc"); out != nil {
		t.Errorf("expected disabled buffer to stash nothing, got %d entries", len(out))
	}
}

func TestForget(t *testing.T) {
	buf := NewPendingBuffer(4, time.Minute)

	buf.Stash("abc", "c1", Frame("gone"))
	buf.Forget("abc")

	if out := buf.Drain("abc"); out != nil {
		t.Errorf("expected forgotten room to have no stash, got %d entries", len(out))
	}
}

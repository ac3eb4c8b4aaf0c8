package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"testing"
	"time"
)

func TestNewVerifierIsURLSafeAndUnique(t *testing.T) {
	a, err := NewVerifier()
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	b, err := NewVerifier()
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	if a == b {
		t.Fatal("two verifiers were identical")
	}
	if _, err := base64.RawURLEncoding.DecodeString(a); err != nil {
		t.Fatalf("verifier %q is not unpadded base64url: %v", a, err)
	}
}

func TestChallengeIsS256(t *testing.T) {
	verifier := "test-verifier"
	sum := sha256.Sum256([]byte(verifier))
	want := base64.RawURLEncoding.EncodeToString(sum[:])
	if got := Challenge(verifier); got != want {
		t.Fatalf("Challenge = %q, want %q", got, want)
	}
}

func TestMemoryStoreTakeOnce(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	if err := s.Put(ctx, "state-1", "verifier-1"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	v, ok, err := s.Take(ctx, "state-1")
	if err != nil || !ok || v != "verifier-1" {
		t.Fatalf("Take = (%q, %v, %v)", v, ok, err)
	}

	// Claimed states are gone.
	if _, ok, _ := s.Take(ctx, "state-1"); ok {
		t.Fatal("second Take succeeded")
	}
}

func TestMemoryStoreUnknownState(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	if _, ok, _ := s.Take(context.Background(), "never-stored"); ok {
		t.Fatal("Take returned ok for an unknown state")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	ctx := context.Background()
	if err := s.Put(ctx, "state-1", "verifier-1"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := s.Take(ctx, "state-1"); ok {
		t.Fatal("Take returned an expired verifier")
	}
}

func TestMemoryStoreIndependentStates(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	s.Put(ctx, "state-a", "verifier-a")
	s.Put(ctx, "state-b", "verifier-b")

	if v, ok, _ := s.Take(ctx, "state-b"); !ok || v != "verifier-b" {
		t.Fatalf("Take(state-b) = (%q, %v)", v, ok)
	}
	if v, ok, _ := s.Take(ctx, "state-a"); !ok || v != "verifier-a" {
		t.Fatalf("Take(state-a) = (%q, %v)", v, ok)
	}
}

package state

import (
	"testing"

	"github.com/reelterm/reel/internal/domain"
)

func TestSessionSignInAndOut(t *testing.T) {
	s := NewSessionState()

	if s.SignedIn() {
		t.Fatalf("fresh state reports signed in")
	}

	s.SignIn(domain.Session{Token: "tok", Username: "ripley"})
	if !s.SignedIn() {
		t.Fatalf("SignedIn() = false after SignIn")
	}
	if got := s.Current(); got == nil || got.Username != "ripley" {
		t.Fatalf("Current() = %+v, want ripley", got)
	}

	s.SignOut()
	if s.SignedIn() || s.Current() != nil {
		t.Fatalf("session survives SignOut")
	}
}

func TestSessionCurrentReturnsCopy(t *testing.T) {
	s := NewSessionState()
	s.SignIn(domain.Session{Token: "tok", Username: "ripley"})

	got := s.Current()
	got.Username = "mutated"

	if s.Current().Username != "ripley" {
		t.Fatalf("Current() aliases internal state")
	}
}

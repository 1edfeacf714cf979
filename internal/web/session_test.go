package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session, err := store.Create(&oauth2.Token{AccessToken: "tok"}, "user-1", "Test User")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if session.ID == "" {
		t.Fatal("session has empty ID")
	}

	got := store.Get(session.ID)
	if got == nil {
		t.Fatal("Get returned nil for live session")
	}
	if got.UserID != "user-1" || got.UserName != "Test User" {
		t.Errorf("session user = %s/%s, want user-1/Test User", got.UserID, got.UserName)
	}

	store.Delete(session.ID)
	if store.Get(session.ID) != nil {
		t.Error("session still readable after Delete")
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()

	session, err := store.Create(&oauth2.Token{}, "user-1", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Age the session past the TTL.
	store.mu.Lock()
	store.sessions[session.ID].CreatedAt = time.Now().Add(-sessionTTL - time.Minute)
	store.mu.Unlock()

	if store.Get(session.ID) != nil {
		t.Error("expired session still readable")
	}
}

func TestSessionStoreGetFromRequest(t *testing.T) {
	store := NewSessionStore()
	session, err := store.Create(&oauth2.Token{}, "user-1", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if store.GetFromRequest(req) != nil {
		t.Error("request without cookie yielded a session")
	}

	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
	if store.GetFromRequest(req) == nil {
		t.Error("request with cookie yielded no session")
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	store := NewSessionStore()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s, err := store.Create(&oauth2.Token{}, "u", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate session ID %s", s.ID)
		}
		seen[s.ID] = true
	}
}

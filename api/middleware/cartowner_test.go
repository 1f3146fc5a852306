package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/velora-labs/storefront-backend/pkg/config"
)

type fakeSessionStore struct {
	known  map[string]bool
	issued []string
}

func newFakeSessionStore(known ...string) *fakeSessionStore {
	store := &fakeSessionStore{known: map[string]bool{}}
	for _, id := range known {
		store.known[id] = true
	}
	return store
}

func (f *fakeSessionStore) Issue(context.Context) (string, error) {
	id := uuid.NewString()
	f.known[id] = true
	f.issued = append(f.issued, id)
	return id, nil
}

func (f *fakeSessionStore) Validate(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func (f *fakeSessionStore) TTL() time.Duration { return time.Hour }

func runCartOwner(t *testing.T, cfg config.CartConfig, store *fakeSessionStore, mutate func(*http.Request)) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var ownerKey string
	handler := CartOwner(cfg, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerKey = CartOwnerKeyFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, ownerKey
}

func TestCartOwnerSessionModeIssuesCookie(t *testing.T) {
	store := newFakeSessionStore()
	w, ownerKey := runCartOwner(t, config.CartConfig{OwnerMode: "session"}, store, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(store.issued) != 1 {
		t.Fatalf("expected one issued session, got %d", len(store.issued))
	}
	if ownerKey != "session:"+store.issued[0] {
		t.Fatalf("owner key %q does not match issued session", ownerKey)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cartSessionCookie {
		t.Fatalf("expected a %s cookie, got %v", cartSessionCookie, cookies)
	}
	if cookies[0].Value != store.issued[0] {
		t.Fatalf("cookie value %q does not match issued session", cookies[0].Value)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}
}

func TestCartOwnerSessionModeReusesValidCookie(t *testing.T) {
	store := newFakeSessionStore("existing-session")
	_, ownerKey := runCartOwner(t, config.CartConfig{OwnerMode: "session"}, store, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "existing-session"})
	})

	if len(store.issued) != 0 {
		t.Fatalf("valid cookie must not trigger a new session")
	}
	if ownerKey != "session:existing-session" {
		t.Fatalf("unexpected owner key %q", ownerKey)
	}
}

func TestCartOwnerSessionModeReplacesExpiredCookie(t *testing.T) {
	store := newFakeSessionStore()
	_, ownerKey := runCartOwner(t, config.CartConfig{OwnerMode: "session"}, store, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: cartSessionCookie, Value: "stale-session"})
	})

	if len(store.issued) != 1 {
		t.Fatalf("expected a replacement session, got %d issued", len(store.issued))
	}
	if ownerKey != "session:"+store.issued[0] {
		t.Fatalf("owner key %q does not match replacement session", ownerKey)
	}
}

func TestCartOwnerUserModeRequiresAuth(t *testing.T) {
	w, _ := runCartOwner(t, config.CartConfig{OwnerMode: "user"}, newFakeSessionStore(), nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}
}

func TestCartOwnerUserModeScopesByUserID(t *testing.T) {
	userID := uuid.NewString()
	_, ownerKey := runCartOwner(t, config.CartConfig{OwnerMode: "user"}, newFakeSessionStore(), func(r *http.Request) {
		*r = *r.WithContext(WithUserID(r.Context(), userID))
	})

	if ownerKey != "user:"+userID {
		t.Fatalf("unexpected owner key %q", ownerKey)
	}
}

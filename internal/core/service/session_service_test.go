package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

type stubAuthenticator struct {
	token   string
	profile domain.Profile
	err     error
}

func (s *stubAuthenticator) Login(context.Context, string, string) (string, domain.Profile, error) {
	if s.err != nil {
		return "", domain.Profile{}, s.err
	}
	return s.token, s.profile, nil
}

type memorySessionStore struct {
	sessions map[string]*domain.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]*domain.Session{}}
}

func (m *memorySessionStore) Save(_ context.Context, s *domain.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *memorySessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (m *memorySessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func TestSessionService_LoginResolveRoundtrip(t *testing.T) {
	auth := &stubAuthenticator{token: "upstream-jwt", profile: domain.Profile{Nome: "Maria", Email: "maria@cpe.org"}}
	store := newMemorySessionStore()
	svc := NewSessionService(auth, store, "secret", time.Hour)

	token, sess, err := svc.Login(context.Background(), "maria@cpe.org", "senha123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || sess.ID == "" {
		t.Fatal("expected a signed token and a session id")
	}
	if sess.UpstreamToken != "upstream-jwt" {
		t.Fatalf("session must carry the upstream token, got %q", sess.UpstreamToken)
	}

	got, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != sess.ID || got.Profile.Nome != "Maria" {
		t.Fatalf("resolved a different session: %+v", got)
	}
}

func TestSessionService_LoginRejectsBlankCredentials(t *testing.T) {
	svc := NewSessionService(&stubAuthenticator{}, newMemorySessionStore(), "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "", "senha123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_ResolveRejectsForeignToken(t *testing.T) {
	store := newMemorySessionStore()
	issuer := NewSessionService(&stubAuthenticator{token: "t"}, store, "secret-a", time.Hour)
	verifier := NewSessionService(&stubAuthenticator{}, store, "secret-b", time.Hour)

	token, _, err := issuer.Login(context.Background(), "maria@cpe.org", "senha123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err = verifier.Resolve(context.Background(), token)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for a foreign signature, got %v", err)
	}
}

func TestSessionService_ResolveExpiredSessionEvicts(t *testing.T) {
	store := newMemorySessionStore()
	svc := NewSessionService(&stubAuthenticator{token: "t"}, store, "secret", time.Hour)

	token, sess, err := svc.Login(context.Background(), "maria@cpe.org", "senha123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	sess.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	_, err = svc.Resolve(context.Background(), token)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, ok := store.sessions[sess.ID]; ok {
		t.Fatal("expired session must be deleted from the store")
	}
}

func TestSessionService_LogoutDeletesSession(t *testing.T) {
	store := newMemorySessionStore()
	svc := NewSessionService(&stubAuthenticator{token: "t"}, store, "secret", time.Hour)

	token, sess, err := svc.Login(context.Background(), "maria@cpe.org", "senha123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background(), sess.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

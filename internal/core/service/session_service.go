package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// SessionService owns the login session: it delegates credential checking to
// the upstream /login, then keeps the upstream token and the librarian's
// profile in one server-side session object instead of scattering them
// through browser storage. Callers get a signed gateway token referencing
// the session.
type SessionService struct {
	auth      ports.Authenticator
	store     ports.SessionStore
	jwtSecret string
	ttl       time.Duration
}

func NewSessionService(auth ports.Authenticator, store ports.SessionStore, jwtSecret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{auth: auth, store: store, jwtSecret: jwtSecret, ttl: ttl}
}

func (s *SessionService) Login(ctx context.Context, email, senha string) (string, *domain.Session, error) {
	if email == "" || senha == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	upstreamToken, profile, err := s.auth.Login(ctx, email, senha)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		ID:            uuid.NewString(),
		UpstreamToken: upstreamToken,
		Profile:       profile,
		IssuedAt:      now,
		ExpiresAt:     now.Add(s.ttl),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(sess)
	if err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

// Resolve validates a gateway token and loads its session.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrSessionNotFound
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, domain.ErrSessionNotFound
	}

	sess, err := s.store.Find(ctx, sid)
	if err != nil {
		return nil, err
	}
	if sess.Expired(time.Now().UTC()) {
		_ = s.store.Delete(ctx, sid)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *SessionService) generateToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sess.ID,
		"nome": sess.Profile.Nome,
		"exp":  sess.ExpiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

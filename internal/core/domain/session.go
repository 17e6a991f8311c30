package domain

import "time"

// Profile is the authenticated librarian's identity as returned by the
// upstream login.
type Profile struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// Session is the gateway-side replacement for the token-in-local-storage
// scheme of the old console: one explicit object, created at login, readable
// everywhere, cleared by logout.
type Session struct {
	ID            string    `json:"id"`
	UpstreamToken string    `json:"upstream_token"`
	Profile       Profile   `json:"profile"`
	IssuedAt      time.Time `json:"issued_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

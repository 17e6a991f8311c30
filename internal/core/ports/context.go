package ports

import "context"

type upstreamTokenKey struct{}

// WithUpstreamToken stores the caller's upstream bearer token in the context.
// The session middleware sets it; the upstream client forwards it on every
// request it makes on the caller's behalf.
func WithUpstreamToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, upstreamTokenKey{}, token)
}

// UpstreamTokenFrom returns the stored token, or "" when the context carries
// none (health probes, login).
func UpstreamTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(upstreamTokenKey{}).(string)
	return token
}

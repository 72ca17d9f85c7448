package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	requestIDKey contextKey = "requestID"
)

// AnonymousUser is the identity used when a request names none.
const AnonymousUser = "anonymous"

// IdentityResolver derives the caller identity from a request. It is the only
// authentication step in the service.
type IdentityResolver func(r *http.Request) string

// HeaderIdentity trusts the given header as-is and falls back to anonymous when it is
// missing or blank. No signature or lookup is performed.
func HeaderIdentity(header, anonymous string) IdentityResolver {
	return func(r *http.Request) string {
		if id := strings.TrimSpace(r.Header.Get(header)); id != "" {
			return id
		}
		return anonymous
	}
}

// ResolveIdentity stores the resolved identity in the request context.
func ResolveIdentity(resolve IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), userIDKey, resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the identity placed in ctx by ResolveIdentity, or AnonymousUser.
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok && id != "" {
		return id
	}
	return AnonymousUser
}

// WithUserID returns a copy of ctx carrying the given identity.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

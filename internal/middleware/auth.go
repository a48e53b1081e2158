package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/model"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/session"
)

// SessionResolver turns a bearer credential into a session. Backed by the
// Redis session store in production.
type SessionResolver interface {
	GetByToken(ctx context.Context, token string) (*session.Session, error)
}

// Auth resolves the Authorization header into a session and stores it on
// the request context. Requests without a credential pass through without
// a session; route groups that need one use RequireSession.
func Auth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := resolver.GetByToken(r.Context(), token)
			if err != nil && !errors.Is(err, session.ErrNoSession) {
				writeAuthError(w, r, http.StatusBadGateway, "session lookup failed")
				return
			}
			if sess != nil {
				r = r.WithContext(session.WithSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession rejects requests that did not resolve to a session.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()) == nil {
			writeAuthError(w, r, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole additionally checks the customer role, for the admin
// back-office routes.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromContext(r.Context())
			if sess == nil {
				writeAuthError(w, r, http.StatusUnauthorized, "authentication required")
				return
			}
			for _, role := range roles {
				if strings.EqualFold(sess.Customer.Role, role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeAuthError(w, r, http.StatusForbidden, "insufficient role")
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeAuthError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error:         msg,
		CorrelationID: GetCorrelationID(r.Context()),
	})
}

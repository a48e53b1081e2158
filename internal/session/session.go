// Package session holds the authenticated storefront session: the bearer
// credential issued by the backend and the customer it belongs to. The
// cart core never reaches for ambient storage; it receives a Provider.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
)

// ErrNoSession is returned when no authenticated session is available.
var ErrNoSession = errors.New("no active session")

type Session struct {
	ID        string          `json:"id"`
	Token     string          `json:"token"`
	Customer  domain.Customer `json:"customer"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Provider yields the current session for a request. The HTTP layer backs
// it with request context; tests back it with a fixed session.
type Provider interface {
	Current(ctx context.Context) (*Session, error)
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok {
		return s
	}
	return nil
}

// TokenFrom returns the bearer credential of the session carried by ctx,
// "" when there is none.
func TokenFrom(ctx context.Context) string {
	if s := FromContext(ctx); s != nil {
		return s.Token
	}
	return ""
}

// ContextProvider resolves the session the auth middleware stored on the
// request context.
type ContextProvider struct{}

func (ContextProvider) Current(ctx context.Context) (*Session, error) {
	if s := FromContext(ctx); s != nil {
		return s, nil
	}
	return nil, ErrNoSession
}

// Static always yields the same session. Test and tooling helper.
type Static struct{ Session *Session }

func (s Static) Current(context.Context) (*Session, error) {
	if s.Session == nil {
		return nil, ErrNoSession
	}
	return s.Session, nil
}

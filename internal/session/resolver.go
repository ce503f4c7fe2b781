package session

import (
	"context"
	"net/http"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
)

// UserFetcher is the slice of the backend client the resolver needs.
type UserFetcher interface {
	Me(ctx context.Context, token string) (*models.User, error)
}

// Resolver turns an incoming request into the current user, or nil. Any
// failure along the way (no cookie, bad signature, backend down, token
// rejected) resolves to nil: fail closed.
type Resolver struct {
	codec   *Codec
	backend UserFetcher
}

func NewResolver(codec *Codec, backend UserFetcher) *Resolver {
	return &Resolver{
		codec:   codec,
		backend: backend,
	}
}

// CurrentUser resolves the user for one navigation. The returned token is the
// backend credential to attach to this request's outbound calls; it is empty
// exactly when the user is nil.
func (r *Resolver) CurrentUser(ctx context.Context, req *http.Request) (*models.User, string) {
	creds := r.codec.Read(req)
	if creds == nil {
		return nil, ""
	}

	user, err := r.backend.Me(ctx, creds.Token)
	if err != nil {
		return nil, ""
	}
	return user, creds.Token
}

// Codec exposes the cookie codec so handlers can issue and clear sessions.
func (r *Resolver) Codec() *Codec {
	return r.codec
}

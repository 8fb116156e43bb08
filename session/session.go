// Package session keeps per-browser session state: the backend bearer token
// and a cached snapshot of the logged-in user. The two live in independent
// slots behind the Store interface; authenticated is never stored, only
// derived from both slots being populated.
package session

import (
	"context"

	"socialweb/models"
)

// Session is the in-memory view of one browser session. A zero Session means
// logged out.
type Session struct {
	Token string
	User  *models.User
}

// Authenticated reports whether the session is usable: token and user must
// both be present. A token without a resolvable user does not count.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// Store persists the two session slots keyed by session id. Implementations
// must treat a corrupt or missing serialized user as "no user", not as an
// error, so a bad write can never lock a visitor out of the login page.
type Store interface {
	GetToken(ctx context.Context, sid string) (string, error)
	GetUser(ctx context.Context, sid string) (*models.User, error)
	// SetSession writes both slots together.
	SetSession(ctx context.Context, sid, token string, user *models.User) error
	// Clear removes both slots regardless of prior state.
	Clear(ctx context.Context, sid string) error
}

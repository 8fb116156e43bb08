// Package auth orchestrates the session lifecycle against the backend:
// login handshake, registration, activation and logout.
package auth

import (
	"context"
	"errors"
	"fmt"

	"socialweb/client"
	"socialweb/models"
	"socialweb/session"
)

// AuthenticationError wraps whatever broke the login handshake after the
// backend issued a token. Its message is shown to the user verbatim.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("failed to authenticate: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Service runs the auth flows. It writes the session store only on fully
// successful logins, so a session can never end up with a token but no user.
type Service struct {
	api   *client.Client
	store session.Store
}

func NewService(api *client.Client, store session.Store) *Service {
	return &Service{api: api, store: store}
}

// Login performs the full handshake for the given session id:
// credentials -> token -> subject claim -> user fetch -> commit. The token is
// handed to the user fetch directly, which is what authorizes that call; the
// store is untouched until every step has succeeded, so any failure leaves
// the session exactly as it was.
func (s *Service) Login(ctx context.Context, sid, email, password string) (*session.Session, error) {
	token, err := s.api.Login(ctx, models.LoginPayload{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, &AuthenticationError{Err: errors.New("no token received from server")}
	}

	userID, err := ExtractSubject(token)
	if err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	user, err := s.api.GetUser(ctx, token, userID)
	if err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	if err := s.store.SetSession(ctx, sid, token, user); err != nil {
		return nil, &AuthenticationError{Err: err}
	}
	return &session.Session{Token: token, User: user}, nil
}

// Register creates an inactive account and returns it with the activation
// token. The session is deliberately untouched: the account must be activated
// before it can log in.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.UserWithToken, error) {
	return s.api.Register(ctx, models.RegisterPayload{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Activate consumes an activation token.
func (s *Service) Activate(ctx context.Context, token string) error {
	return s.api.Activate(ctx, token)
}

// Logout clears both session slots. No network call is involved and there is
// nothing to fail towards the user; a store error only means the slots will
// age out with the TTL instead.
func (s *Service) Logout(ctx context.Context, sid string) {
	_ = s.store.Clear(ctx, sid)
}

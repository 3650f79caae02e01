// Package services contains application services for the ReWear client.
// This file defines the authentication service: signup, login, profile
// reads/updates, logout, liveness checks, and ownership of the persisted
// session token.
package services

import (
	"context"
	"net/http"

	"github.com/rewearapp/rewear/internal/client/api"
	"github.com/rewearapp/rewear/internal/client/models"
	"github.com/rewearapp/rewear/internal/client/session"
	"github.com/rewearapp/rewear/internal/logging"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Signup/Login: authenticate against the server; on success the
//     returned token is saved to the session store before the user is
//     returned.
//   - Profile/UpdateProfile: require a present token; fail fast with a
//     local 401 error when no session exists.
//   - Logout: best-effort server notification; the local token is
//     always cleared as a final step, whatever the server said.
//   - CheckHealth: platform liveness check, no session required.
//   - IsAuthenticated: local token-presence check, no network call and
//     no expiry validation.
//
// AuthService is the only writer of the session store; all other
// components borrow the token read-only.
type AuthService interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) (*models.RemoteUser, error)
	Login(ctx context.Context, email, password string) (*models.RemoteUser, error)
	Profile(ctx context.Context) (*models.RemoteUser, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.RemoteUser, error)
	Logout(ctx context.Context) error
	ClearSession(ctx context.Context) error
	CheckHealth(ctx context.Context) (*models.Health, error)
	IsAuthenticated(ctx context.Context) (bool, error)
}

type authService struct {
	client   api.Client
	sessions session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API
// client and session store.
func NewAuthService(client api.Client, sessions session.Store, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, log: log}
}

// authPayload is the signup/login success payload: the fresh user
// record plus the bearer token for subsequent requests.
type authPayload struct {
	User  models.RemoteUser `json:"user"`
	Token string            `json:"token"`
}

type userPayload struct {
	User models.RemoteUser `json:"user"`
}

func (a *authService) authenticate(ctx context.Context, endpoint string, body any, what string) (*models.RemoteUser, error) {
	env, err := a.client.Do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}

	var payload authPayload
	if err := env.DecodeData(&payload, what); err != nil {
		return nil, err
	}

	if err := a.sessions.Save(ctx, payload.Token); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

func (a *authService) Signup(ctx context.Context, email, password, firstName, lastName string) (*models.RemoteUser, error) {
	body := map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
	}
	return a.authenticate(ctx, "/auth/signup", body, "signup failed")
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.RemoteUser, error) {
	body := map[string]string{"email": email, "password": password}
	return a.authenticate(ctx, "/auth/login", body, "login failed")
}

// requireToken enforces the local-first discipline: token-requiring
// operations fail with a 401 before any network round trip when no
// session exists.
func requireToken(ctx context.Context, sessions session.Store) error {
	token, err := sessions.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return api.Unauthorized("no authentication token found")
	}
	return nil
}

func (a *authService) Profile(ctx context.Context) (*models.RemoteUser, error) {
	if err := requireToken(ctx, a.sessions); err != nil {
		return nil, err
	}

	env, err := a.client.Do(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var payload userPayload
	if err := env.DecodeData(&payload, "failed to get profile"); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.RemoteUser, error) {
	if err := requireToken(ctx, a.sessions); err != nil {
		return nil, err
	}

	env, err := a.client.Do(ctx, http.MethodPut, "/auth/profile", upd)
	if err != nil {
		return nil, err
	}

	var payload userPayload
	if err := env.DecodeData(&payload, "failed to update profile"); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// Logout notifies the server, then clears the local token. The clear
// runs unconditionally: logout means "this client never sends the
// token again", independent of server acknowledgment. A server failure
// is logged, not surfaced; only a failure to clear the local store is
// returned.
func (a *authService) Logout(ctx context.Context) (err error) {
	defer func() {
		if cerr := a.sessions.Clear(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	token, terr := a.sessions.Token(ctx)
	if terr != nil || token == "" {
		return nil
	}

	if _, derr := a.client.Do(ctx, http.MethodPost, "/auth/logout", nil); derr != nil {
		a.log.Warn(ctx, "logout notification failed", "error", derr)
	}
	return nil
}

// ClearSession drops the local token without notifying the server.
// Used by startup recovery when a persisted token turns out invalid.
func (a *authService) ClearSession(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

func (a *authService) CheckHealth(ctx context.Context) (*models.Health, error) {
	env, err := a.client.Do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	var health models.Health
	if err := env.DecodeData(&health, "health check failed"); err != nil {
		return nil, err
	}
	return &health, nil
}

func (a *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := a.sessions.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

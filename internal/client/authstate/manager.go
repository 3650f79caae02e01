// Package authstate holds the client's current-user state: the single
// owned container the rest of the application reads its View User and
// loading flag from.
package authstate

import (
	"context"
	"errors"
	"sync"

	"github.com/rewearapp/rewear/internal/client/api"
	"github.com/rewearapp/rewear/internal/client/models"
	"github.com/rewearapp/rewear/internal/client/services"
	"github.com/rewearapp/rewear/internal/logging"
)

// Manager owns the pair (current View User, resolved flag).
//
// Lifecycle: the manager starts unresolved with no user. Resolve runs
// exactly once and moves it to resolved, either with a user recovered
// from a persisted token or with none. Thereafter the state only moves
// on explicit Login/Signup/UpdateProfile/Logout calls, each of which
// replaces the user atomically.
//
// A generation counter guards against stale async results: any call
// that ends a session bumps the generation, and an in-flight operation
// that started under an older generation discards its result instead of
// clobbering newer state.
type Manager struct {
	auth services.AuthService
	log  logging.Logger

	mu       sync.Mutex
	user     *models.ViewUser
	resolved bool
	gen      uint64
}

// NewManager constructs an unresolved Manager.
func NewManager(auth services.AuthService, log logging.Logger) *Manager {
	return &Manager{auth: auth, log: log}
}

// Snapshot returns the current state pair. The user is nil when no one
// is signed in; resolved is false until the startup resolution has
// completed.
func (m *Manager) Snapshot() (*models.ViewUser, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.resolved
}

// CurrentUser returns the signed-in View User, or nil.
func (m *Manager) CurrentUser() *models.ViewUser {
	u, _ := m.Snapshot()
	return u
}

// Resolved reports whether the startup resolution has completed.
func (m *Manager) Resolved() bool {
	_, r := m.Snapshot()
	return r
}

// begin records the generation an async operation starts under.
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// commit installs user if the generation is still current. Returns
// false when the operation was superseded and its result discarded.
func (m *Manager) commit(gen uint64, user *models.ViewUser) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		return false
	}
	m.user = user
	return true
}

// Resolve performs the one-time startup resolution: if a token is
// persisted, it fetches the profile and installs the View User; any
// failure clears the stored token so an invalid session self-heals.
// Either way the manager ends resolved. Calls after the first are
// no-ops.
func (m *Manager) Resolve(ctx context.Context) {
	m.mu.Lock()
	if m.resolved {
		m.mu.Unlock()
		return
	}
	gen := m.gen
	m.mu.Unlock()

	var user *models.ViewUser

	authenticated, err := m.auth.IsAuthenticated(ctx)
	if err != nil {
		m.log.Error(ctx, "session check failed", "error", err)
	} else if authenticated {
		remote, perr := m.auth.Profile(ctx)
		if perr != nil {
			m.log.Warn(ctx, "session recovery failed, clearing token", "error", perr)
			if cerr := m.auth.ClearSession(ctx); cerr != nil {
				m.log.Error(ctx, "failed to clear invalid session", "error", cerr)
			}
		} else {
			user = models.NewViewUser(remote)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = true
	if m.gen == gen {
		m.user = user
	}
}

// displayable converts a machine error into a user-facing one. Field
// validation errors are joined into a single message; anything that is
// not an api.Error falls back to the given message.
func displayable(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return errors.New(apiErr.JoinFields())
	}
	return errors.New(fallback)
}

// Login authenticates and replaces the current user. On failure the
// prior state is left untouched and a user-displayable error is
// returned.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	gen := m.begin()

	remote, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return displayable(err, "Login failed. Please try again.")
	}

	if !m.commit(gen, models.NewViewUser(remote)) {
		m.log.Debug(ctx, "discarding superseded login result")
	}
	return nil
}

// Signup registers a new account and signs it in.
func (m *Manager) Signup(ctx context.Context, email, password, firstName, lastName string) error {
	gen := m.begin()

	remote, err := m.auth.Signup(ctx, email, password, firstName, lastName)
	if err != nil {
		return displayable(err, "Signup failed. Please try again.")
	}

	if !m.commit(gen, models.NewViewUser(remote)) {
		m.log.Debug(ctx, "discarding superseded signup result")
	}
	return nil
}

// UpdateProfile applies a partial profile change and rebuilds the View
// User from the server's fresh copy.
func (m *Manager) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	gen := m.begin()

	remote, err := m.auth.UpdateProfile(ctx, upd)
	if err != nil {
		return displayable(err, "Profile update failed. Please try again.")
	}

	if !m.commit(gen, models.NewViewUser(remote)) {
		m.log.Debug(ctx, "discarding superseded profile update")
	}
	return nil
}

// Logout ends the session. The current user is removed and the
// generation bumped before the service call, so no in-flight operation
// can repopulate a user after logout. Service failures are logged, not
// surfaced: from the caller's point of view logout always succeeds.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.gen++
	m.user = nil
	m.mu.Unlock()

	if err := m.auth.Logout(ctx); err != nil {
		m.log.Error(ctx, "logout cleanup failed", "error", err)
	}
}

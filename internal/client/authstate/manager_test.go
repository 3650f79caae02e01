package authstate

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewearapp/rewear/internal/client/api"
	"github.com/rewearapp/rewear/internal/client/models"
	"github.com/rewearapp/rewear/internal/logging"
)

// fakeAuth implements services.AuthService for manager tests.
type fakeAuth struct {
	authenticated bool
	authErr       error

	loginUser  *models.RemoteUser
	loginErr   error
	signupUser *models.RemoteUser
	signupErr  error

	profileUser *models.RemoteUser
	profileErr  error

	updateUser *models.RemoteUser
	updateErr  error
	// updateStarted/updateRelease, when set, make UpdateProfile block
	// until released, to stage in-flight operations.
	updateStarted chan struct{}
	updateRelease chan struct{}

	logoutErr error

	logoutCalls  int
	clearCalls   int
	profileCalls int
}

func (f *fakeAuth) Signup(ctx context.Context, email, password, firstName, lastName string) (*models.RemoteUser, error) {
	return f.signupUser, f.signupErr
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.RemoteUser, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Profile(ctx context.Context) (*models.RemoteUser, error) {
	f.profileCalls++
	return f.profileUser, f.profileErr
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.RemoteUser, error) {
	if f.updateStarted != nil {
		close(f.updateStarted)
		<-f.updateRelease
	}
	return f.updateUser, f.updateErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuth) ClearSession(ctx context.Context) error {
	f.clearCalls++
	return nil
}

func (f *fakeAuth) CheckHealth(ctx context.Context) (*models.Health, error) {
	return &models.Health{Status: "OK"}, nil
}

func (f *fakeAuth) IsAuthenticated(ctx context.Context) (bool, error) {
	return f.authenticated, f.authErr
}

func remoteUser(role models.Role) *models.RemoteUser {
	return &models.RemoteUser{
		ID:        "u1",
		Email:     "greta@example.com",
		FirstName: "Greta",
		LastName:  "Holt",
		Role:      role,
		IsActive:  true,
	}
}

func TestManager_StartsUnresolved(t *testing.T) {
	m := NewManager(&fakeAuth{}, logging.Nop())

	user, resolved := m.Snapshot()
	assert.Nil(t, user)
	assert.False(t, resolved)
}

func TestManager_Resolve_NoToken(t *testing.T) {
	fa := &fakeAuth{authenticated: false}
	m := NewManager(fa, logging.Nop())

	m.Resolve(context.Background())

	user, resolved := m.Snapshot()
	assert.Nil(t, user)
	assert.True(t, resolved)
	assert.Zero(t, fa.profileCalls, "no profile fetch without a token")
}

func TestManager_Resolve_RecoversSession(t *testing.T) {
	fa := &fakeAuth{authenticated: true, profileUser: remoteUser(models.RoleAdmin)}
	m := NewManager(fa, logging.Nop())

	m.Resolve(context.Background())

	user, resolved := m.Snapshot()
	require.NotNil(t, user)
	assert.True(t, resolved)
	assert.Equal(t, "Greta Holt", user.Name)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, models.DefaultPoints, user.Points)
}

func TestManager_Resolve_InvalidTokenSelfHeals(t *testing.T) {
	fa := &fakeAuth{
		authenticated: true,
		profileErr:    &api.Error{Status: http.StatusUnauthorized, Message: "token expired"},
	}
	m := NewManager(fa, logging.Nop())

	m.Resolve(context.Background())

	user, resolved := m.Snapshot()
	assert.Nil(t, user)
	assert.True(t, resolved, "must resolve, never stay stuck")
	assert.Equal(t, 1, fa.clearCalls, "invalid token must be cleared")
}

func TestManager_Resolve_RunsOnce(t *testing.T) {
	fa := &fakeAuth{authenticated: true, profileUser: remoteUser(models.RoleUser)}
	m := NewManager(fa, logging.Nop())

	m.Resolve(context.Background())
	m.Resolve(context.Background())

	assert.Equal(t, 1, fa.profileCalls)
}

func TestManager_Login_SetsUser(t *testing.T) {
	fa := &fakeAuth{loginUser: remoteUser(models.RoleUser)}
	m := NewManager(fa, logging.Nop())
	m.Resolve(context.Background())

	require.NoError(t, m.Login(context.Background(), "greta@example.com", "pw"))

	user := m.CurrentUser()
	require.NotNil(t, user)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, models.DefaultPoints, user.Points)
}

func TestManager_Login_FailureLeavesStateUntouched(t *testing.T) {
	fa := &fakeAuth{loginUser: remoteUser(models.RoleUser)}
	m := NewManager(fa, logging.Nop())
	m.Resolve(context.Background())
	require.NoError(t, m.Login(context.Background(), "greta@example.com", "pw"))

	fa.loginErr = &api.Error{Status: http.StatusUnauthorized, Message: "invalid credentials"}
	err := m.Login(context.Background(), "greta@example.com", "wrong")
	require.EqualError(t, err, "invalid credentials")

	assert.NotNil(t, m.CurrentUser(), "prior session survives a failed login")
}

func TestManager_Signup_JoinsFieldErrors(t *testing.T) {
	fa := &fakeAuth{signupErr: &api.Error{
		Status:  http.StatusBadRequest,
		Message: "validation failed",
		Fields: []api.FieldError{
			{Field: "email", Message: "email is invalid"},
			{Field: "password", Message: "password too short"},
		},
	}}
	m := NewManager(fa, logging.Nop())
	m.Resolve(context.Background())

	err := m.Signup(context.Background(), "bad", "x", "A", "B")
	require.EqualError(t, err, "email is invalid, password too short")
	assert.Nil(t, m.CurrentUser())
}

func TestManager_Login_NonAPIFailureFallsBack(t *testing.T) {
	fa := &fakeAuth{loginErr: errors.New("weird internal condition")}
	m := NewManager(fa, logging.Nop())
	m.Resolve(context.Background())

	err := m.Login(context.Background(), "a@b.c", "pw")
	require.EqualError(t, err, "Login failed. Please try again.")
}

func TestManager_Logout_AlwaysEndsWithoutUser(t *testing.T) {
	tests := []struct {
		name      string
		logoutErr error
	}{
		{name: "clean logout"},
		{name: "service failure is swallowed", logoutErr: errors.New("store failure")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := &fakeAuth{loginUser: remoteUser(models.RoleUser), logoutErr: tt.logoutErr}
			m := NewManager(fa, logging.Nop())
			m.Resolve(context.Background())
			require.NoError(t, m.Login(context.Background(), "a@b.c", "pw"))

			m.Logout(context.Background())

			assert.Nil(t, m.CurrentUser())
			assert.Equal(t, 1, fa.logoutCalls)
		})
	}
}

func TestManager_UpdateProfile_RebuildsUser(t *testing.T) {
	updated := remoteUser(models.RoleUser)
	updated.FirstName = "Margarete"
	fa := &fakeAuth{loginUser: remoteUser(models.RoleUser), updateUser: updated}
	m := NewManager(fa, logging.Nop())
	m.Resolve(context.Background())
	require.NoError(t, m.Login(context.Background(), "a@b.c", "pw"))

	first := "Margarete"
	require.NoError(t, m.UpdateProfile(context.Background(), models.ProfileUpdate{FirstName: &first}))

	assert.Equal(t, "Margarete Holt", m.CurrentUser().Name)
}

// A profile update still in flight when logout completes must not
// repopulate the user afterwards.
func TestManager_StaleUpdateDiscardedAfterLogout(t *testing.T) {
	fa := &fakeAuth{
		loginUser:     remoteUser(models.RoleUser),
		updateUser:    remoteUser(models.RoleUser),
		updateStarted: make(chan struct{}),
		updateRelease: make(chan struct{}),
	}
	m := NewManager(fa, logging.Nop())
	m.Resolve(context.Background())
	require.NoError(t, m.Login(context.Background(), "a@b.c", "pw"))

	done := make(chan error, 1)
	first := "Stale"
	go func() {
		done <- m.UpdateProfile(context.Background(), models.ProfileUpdate{FirstName: &first})
	}()

	<-fa.updateStarted
	m.Logout(context.Background())
	close(fa.updateRelease)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("update did not finish")
	}

	assert.Nil(t, m.CurrentUser(), "stale response must not resurrect the session")
}

package cli

import (
	"context"
	"fmt"

	"github.com/rewearapp/rewear/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for account details and attempts to create and sign
// in to a new account. On success the session is established and the
// new user greeted; a failure is reported with the service's
// user-displayable message.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.state.Signup(ctx, email, password, firstName, lastName); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.state.CurrentUser().Name)
	return nil
}

// Login prompts for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.state.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.state.CurrentUser().Name)
	return nil
}

// Logout ends the session. It always succeeds from the user's point of
// view: the local token is gone even if the server could not be
// reached.
func (a *App) Logout(ctx context.Context) error {
	a.state.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the signed-in user's profile and placeholder balance.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.state.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "  role: %s  active: %t  points: %d\n", u.Role, u.IsActive, u.Points)
	if u.LastLogin != nil {
		fmt.Fprintf(a.out, "  last login: %s\n", u.LastLogin.Format("2006-01-02 15:04"))
	}
	return nil
}

// UpdateProfile prompts for new profile values; empty input leaves the
// corresponding field unchanged.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	firstName, err := getSimpleText(a.reader, "New first name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "New last name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	picture, err := getSimpleText(a.reader, "New profile picture URL (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var upd models.ProfileUpdate
	if firstName != "" {
		upd.FirstName = &firstName
	}
	if lastName != "" {
		upd.LastName = &lastName
	}
	if picture != "" {
		upd.ProfilePicture = &picture
	}

	if upd == (models.ProfileUpdate{}) {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	if err := a.state.UpdateProfile(ctx, upd); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Profile updated: %s\n", a.state.CurrentUser().Name)
	return nil
}

// Health calls the platform liveness endpoint and reports the result.
func (a *App) Health(ctx context.Context) error {
	h, err := a.auth.CheckHealth(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Server unreachable:", err.Error())
		a.setMode(ModeOffline)
		return err
	}

	fmt.Fprintf(a.out, "%s: %s (%s)\n", h.Status, h.Message, h.Timestamp)
	a.setMode(ModeOnline)
	return nil
}

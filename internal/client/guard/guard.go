// Package guard decides whether privileged admin content may be shown.
// The decision logic is a pure function over the auth state and the
// server-side verification outcome; the Gate wraps it with the actual
// async verification call.
package guard

import (
	"context"

	"github.com/rewearapp/rewear/internal/client/authstate"
	"github.com/rewearapp/rewear/internal/client/models"
	"github.com/rewearapp/rewear/internal/client/services"
	"github.com/rewearapp/rewear/internal/logging"
)

// State is the gate's outward-facing state.
type State int

const (
	// StateChecking means the decision is not final yet: either the
	// auth state is unresolved or verification is still in flight.
	// Callers show a neutral loading indicator and neither render
	// privileged content nor redirect.
	StateChecking State = iota
	StateDenied
	StateGranted
)

// Reason explains a denial.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonNotAuthenticated: no current user.
	ReasonNotAuthenticated
	// ReasonNotAdmin: the local admin flag is unset; decided without a
	// network call.
	ReasonNotAdmin
	// ReasonAccessDenied: the server re-checked the token and refused
	// admin access (confirmed 403).
	ReasonAccessDenied
	// ReasonVerificationFailed: verification raised an indeterminate
	// failure; access fails closed.
	ReasonVerificationFailed
)

// Notice renders the user-facing denial message, empty for reasons that
// carry none.
func (r Reason) Notice() string {
	switch r {
	case ReasonAccessDenied:
		return "You do not have admin privileges to access this page."
	case ReasonVerificationFailed:
		return "Unable to verify admin access. Please try again."
	default:
		return ""
	}
}

// Verification is the outcome of the server-side admin re-check.
type Verification int

const (
	// VerificationPending is the not-yet-determined sentinel.
	VerificationPending Verification = iota
	VerificationDenied
	VerificationGranted
)

// Redirect targets for denied access.
const (
	RedirectLogin     = "/login"
	RedirectDashboard = "/dashboard"
)

// Decision is the gate's output. Redirect is non-empty only for
// denials.
type Decision struct {
	State    State
	Reason   Reason
	Redirect string
}

// Evaluate is the pure decision function. Order matters:
//
//  1. Unresolved auth state -> checking.
//  2. No user -> denied, redirect to login.
//  3. User without the local admin flag -> denied immediately (no
//     verification consulted), redirect to dashboard.
//  4. Local admin flag set -> follow the verification outcome; pending
//     verification keeps the gate in checking.
func Evaluate(user *models.ViewUser, resolved bool, v Verification) Decision {
	if !resolved {
		return Decision{State: StateChecking}
	}
	if user == nil {
		return Decision{State: StateDenied, Reason: ReasonNotAuthenticated, Redirect: RedirectLogin}
	}
	if !user.IsAdmin {
		return Decision{State: StateDenied, Reason: ReasonNotAdmin, Redirect: RedirectDashboard}
	}

	switch v {
	case VerificationGranted:
		return Decision{State: StateGranted}
	case VerificationDenied:
		return Decision{State: StateDenied, Reason: ReasonAccessDenied, Redirect: RedirectDashboard}
	default:
		return Decision{State: StateChecking}
	}
}

// Gate performs the full admission check: local auth state first, then
// the server-side re-verification when the local state alone cannot
// grant access. The verification result is never cached; every Check
// recomputes it.
type Gate struct {
	state *authstate.Manager
	admin services.AdminService
	log   logging.Logger
}

func NewGate(state *authstate.Manager, admin services.AdminService, log logging.Logger) *Gate {
	return &Gate{state: state, admin: admin, log: log}
}

// Check evaluates admission for the current user. It only reaches the
// network when the user carries the local admin flag; any verification
// error fails closed with a distinct reason.
func (g *Gate) Check(ctx context.Context) Decision {
	user, resolved := g.state.Snapshot()

	d := Evaluate(user, resolved, VerificationPending)
	if d.State != StateChecking || !resolved {
		return d
	}

	ok, err := g.admin.VerifyAccess(ctx)
	if err != nil {
		g.log.Error(ctx, "admin verification failed", "error", err)
		return Decision{State: StateDenied, Reason: ReasonVerificationFailed, Redirect: RedirectDashboard}
	}
	if !ok {
		return Evaluate(user, resolved, VerificationDenied)
	}
	return Evaluate(user, resolved, VerificationGranted)
}

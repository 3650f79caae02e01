// Package models defines client-side data models used by the ReWear CLI.
package models

import "time"

// Role classifies a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// RemoteUser is the server-canonical user record as returned by the
// auth endpoints. The client never mutates it directly; every change
// goes through a service call that returns a fresh copy.
type RemoteUser struct {
	// ID is the server-assigned unique identifier.
	ID string `json:"_id"`

	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Role is either RoleUser or RoleAdmin.
	Role Role `json:"role"`

	// ProfilePicture is an optional URL reference; the client never
	// touches the underlying object storage.
	ProfilePicture string `json:"profilePicture,omitempty"`

	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// DefaultPoints is the placeholder balance assigned to every ViewUser.
// A real points ledger does not exist yet; until it does, the balance
// is a constant, not a field of the remote record.
const DefaultPoints = 150

// ViewUser is the UI-facing projection of a RemoteUser. It is rebuilt
// whole via NewViewUser whenever the remote record changes, never
// patched in place.
type ViewUser struct {
	ID             string
	Email          string
	Name           string
	FirstName      string
	LastName       string
	Role           Role
	IsAdmin        bool
	ProfilePicture string
	IsActive       bool
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Points         int
}

// NewViewUser derives a ViewUser from a RemoteUser. The transform is
// pure: same input always yields the same output.
func NewViewUser(u *RemoteUser) *ViewUser {
	return &ViewUser{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.FirstName + " " + u.LastName,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		IsAdmin:        u.Role == RoleAdmin,
		ProfilePicture: u.ProfilePicture,
		IsActive:       u.IsActive,
		LastLogin:      u.LastLogin,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
		Points:         DefaultPoints,
	}
}

// ProfileUpdate is a partial profile mutation. Nil fields are omitted
// from the request and left unchanged server-side.
type ProfileUpdate struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// Health is the payload of the platform liveness endpoint.
type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

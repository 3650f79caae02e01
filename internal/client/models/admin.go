package models

import "time"

// AdminUser is a user record as returned by the admin endpoints.
// It matches RemoteUser minus the profile picture, which the admin
// listing does not include.
type AdminUser struct {
	ID        string     `json:"_id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// AdminStats are the aggregate counters shown on the admin dashboard.
type AdminStats struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	AdminUsers    int `json:"adminUsers"`
	InactiveUsers int `json:"inactiveUsers"`
}

// AdminDashboard is the admin dashboard payload.
type AdminDashboard struct {
	Stats       AdminStats  `json:"stats"`
	RecentUsers []AdminUser `json:"recentUsers"`
}

// Pagination echoes the server-computed paging state for a user listing.
// Pages are 1-indexed.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalUsers  int  `json:"totalUsers"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []AdminUser `json:"users"`
	Pagination Pagination  `json:"pagination"`
}

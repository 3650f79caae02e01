package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rewearapp/rewear/internal/client/api"
	"github.com/rewearapp/rewear/internal/client/models"
	"github.com/rewearapp/rewear/internal/client/session"
	"github.com/rewearapp/rewear/internal/logging"
)

// AdminService defines the privileged operations for the admin panel.
//
// Every operation requires a present session token and fails fast with
// a local 401 error when none exists. Mutations are single-record and
// independent; the service performs no list caching, so callers refresh
// their own views after a mutation.
type AdminService interface {
	DashboardData(ctx context.Context) (*models.AdminDashboard, error)
	Users(ctx context.Context, page, limit int) (*models.UserPage, error)
	UpdateUserStatus(ctx context.Context, userID string, isActive bool) (*models.AdminUser, error)
	UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.AdminUser, error)
	DeleteUser(ctx context.Context, userID string) error
	VerifyAccess(ctx context.Context) (bool, error)
}

type adminService struct {
	client   api.Client
	sessions session.Store
	log      logging.Logger
}

// NewAdminService constructs an AdminService. It borrows the session
// store read-only; token ownership stays with the auth service.
func NewAdminService(client api.Client, sessions session.Store, log logging.Logger) AdminService {
	return &adminService{client: client, sessions: sessions, log: log}
}

func (s *adminService) DashboardData(ctx context.Context) (*models.AdminDashboard, error) {
	if err := requireToken(ctx, s.sessions); err != nil {
		return nil, err
	}

	env, err := s.client.Do(ctx, http.MethodGet, "/auth/admin/dashboard", nil)
	if err != nil {
		return nil, err
	}

	var dashboard models.AdminDashboard
	if err := env.DecodeData(&dashboard, "failed to get dashboard data"); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// Users fetches one page of the user listing. Pages are 1-indexed; a
// page beyond the last returns an empty list with HasNextPage=false,
// not an error.
func (s *adminService) Users(ctx context.Context, page, limit int) (*models.UserPage, error) {
	if err := requireToken(ctx, s.sessions); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/auth/admin/users?page=%d&limit=%d", page, limit)
	env, err := s.client.Do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var result models.UserPage
	if err := env.DecodeData(&result, "failed to get users"); err != nil {
		return nil, err
	}
	return &result, nil
}

type adminUserPayload struct {
	User models.AdminUser `json:"user"`
}

func (s *adminService) UpdateUserStatus(ctx context.Context, userID string, isActive bool) (*models.AdminUser, error) {
	if err := requireToken(ctx, s.sessions); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/auth/admin/users/%s/status", userID)
	env, err := s.client.Do(ctx, http.MethodPut, endpoint, map[string]bool{"isActive": isActive})
	if err != nil {
		return nil, err
	}

	var payload adminUserPayload
	if err := env.DecodeData(&payload, "failed to update user status"); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.AdminUser, error) {
	if err := requireToken(ctx, s.sessions); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/auth/admin/users/%s/role", userID)
	env, err := s.client.Do(ctx, http.MethodPut, endpoint, map[string]models.Role{"role": role})
	if err != nil {
		return nil, err
	}

	var payload adminUserPayload
	if err := env.DecodeData(&payload, "failed to update user role"); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID string) error {
	if err := requireToken(ctx, s.sessions); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("/auth/admin/users/%s", userID)
	_, err := s.client.Do(ctx, http.MethodDelete, endpoint, nil)
	return err
}

// VerifyAccess calls the dashboard endpoint to confirm the current
// token really carries admin privileges. Only a confirmed 403 maps to
// false — the server has seen the token and refused it. Anything else
// (network failure, 401, 500) is indeterminate and propagates as an
// error for the caller to handle.
func (s *adminService) VerifyAccess(ctx context.Context) (bool, error) {
	_, err := s.DashboardData(ctx)
	if err == nil {
		return true, nil
	}
	if api.IsForbidden(err) {
		return false, nil
	}
	return false, err
}

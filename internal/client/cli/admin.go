package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rewearapp/rewear/internal/client/guard"
	"github.com/rewearapp/rewear/internal/client/models"
)

// requireAdmin runs the admission gate for a privileged command. The
// gate is consulted on every invocation; nothing is cached between
// commands.
func (a *App) requireAdmin(ctx context.Context) bool {
	d := a.gate.Check(ctx)
	switch d.State {
	case guard.StateGranted:
		return true
	case guard.StateDenied:
		if notice := d.Reason.Notice(); notice != "" {
			fmt.Fprintln(a.out, notice)
		} else if d.Reason == guard.ReasonNotAuthenticated {
			fmt.Fprintln(a.out, "Please log in first.")
		} else {
			fmt.Fprintln(a.out, "Admin access required.")
		}
		return false
	default:
		fmt.Fprintln(a.out, "Verifying access...")
		return false
	}
}

// Dashboard prints the admin stats and the most recent signups.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	d, err := a.admin.DashboardData(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load dashboard:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Users: %d total, %d active, %d inactive, %d admins\n",
		d.Stats.TotalUsers, d.Stats.ActiveUsers, d.Stats.InactiveUsers, d.Stats.AdminUsers)
	fmt.Fprintln(a.out, "Recent signups:")
	for _, u := range d.RecentUsers {
		fmt.Fprintf(a.out, "  %s  %s %s <%s>\n", u.ID, u.FirstName, u.LastName, u.Email)
	}
	return nil
}

// Users lists one page of accounts: "users [page]", ten per page.
func (a *App) Users(ctx context.Context, args []string) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 {
			fmt.Fprintln(a.out, "Usage: users [page]")
			return nil
		}
		page = p
	}

	result, err := a.admin.Users(ctx, page, 10)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to list users:", err.Error())
		return err
	}

	for _, u := range result.Users {
		active := "active"
		if !u.IsActive {
			active = "inactive"
		}
		fmt.Fprintf(a.out, "%s  %s %s <%s>  %s  %s\n", u.ID, u.FirstName, u.LastName, u.Email, u.Role, active)
	}
	p := result.Pagination
	fmt.Fprintf(a.out, "Page %d of %d (%d users)\n", p.CurrentPage, p.TotalPages, p.TotalUsers)
	return nil
}

// SetUserStatus activates or deactivates an account:
// "activate <id>" / "deactivate <id>".
func (a *App) SetUserStatus(ctx context.Context, args []string, active bool) error {
	if !a.requireAdmin(ctx) {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: activate|deactivate <user-id>")
		return nil
	}

	u, err := a.admin.UpdateUserStatus(ctx, args[0], active)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to update status:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> is now active=%t\n", u.ID, u.Email, u.IsActive)
	return nil
}

// SetUserRole changes an account's role: "role <id> user|admin".
func (a *App) SetUserRole(ctx context.Context, args []string) error {
	if !a.requireAdmin(ctx) {
		return nil
	}
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: role <user-id> user|admin")
		return nil
	}

	role := models.Role(args[1])
	if role != models.RoleUser && role != models.RoleAdmin {
		fmt.Fprintln(a.out, "Usage: role <user-id> user|admin")
		return nil
	}

	u, err := a.admin.UpdateUserRole(ctx, args[0], role)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to update role:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> is now %s\n", u.ID, u.Email, u.Role)
	return nil
}

// RemoveUser deletes an account: "rmuser <id>". The listing is not
// refreshed automatically; run "users" again to see the result.
func (a *App) RemoveUser(ctx context.Context, args []string) error {
	if !a.requireAdmin(ctx) {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: rmuser <user-id>")
		return nil
	}

	if err := a.admin.DeleteUser(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, "Failed to delete user:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "User %s deleted.\n", args[0])
	return nil
}

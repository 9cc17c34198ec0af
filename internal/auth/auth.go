// Package auth decides whether an authenticated principal may perform
// role-guarded operations. Decisions are pure functions of their arguments;
// nothing is attached to the request or shared between requests.
package auth

import (
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
)

type Principal struct {
	ID       string
	Username string
	Role     string
}

// Require returns nil only when the principal is authenticated and holds the
// required role.
func Require(p Principal, role string) error {
	if p.ID == "" {
		return errs.ErrNotLoggedIn
	}

	if p.Role != role {
		return errs.ErrNoPermission
	}

	return nil
}

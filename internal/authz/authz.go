// Package authz decides whether an identity may perform an operation.
// Relationship checks (ownership) live with the use cases.
package authz

import (
	"slices"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// Identity is the authenticated caller, as asserted by the token issuer.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) Is(role string) bool {
	return i.Role == role
}

// Require allows the call when the identity holds one of roles. An empty
// roles list only requires an authenticated identity.
func Require(id Identity, roles ...string) error {
	if id.UserID == "" {
		return httperr.ErrBusiness(httperr.KindUnauthorized, "unauthenticated", "Authentication required.")
	}
	if len(roles) == 0 || slices.Contains(roles, id.Role) {
		return nil
	}
	return httperr.ForbiddenErr("insufficient_role", "You do not have permission to perform this action.")
}

func ValidRole(role string) bool {
	switch role {
	case models.RoleClient, models.RoleProfessional, models.RoleAdmin:
		return true
	}
	return false
}

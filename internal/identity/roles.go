package identity

import (
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
)

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// CanSell reports whether the caller may manage listings.
func (i Identity) CanSell() bool {
	return i.Role == models.RoleSeller || i.Role == models.RoleAdmin
}

// Owns reports whether the caller owns a resource belonging to ownerID.
// Admins own everything.
func (i Identity) Owns(ownerID uuid.UUID) bool {
	return i.IsAdmin() || (i.UserID != uuid.Nil && i.UserID == ownerID)
}

// HasAnyRole reports whether the caller's role is one of roles.
func (i Identity) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

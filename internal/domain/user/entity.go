package user

import (
	"github.com/google/uuid"
)

// Principal is the authenticated caller as asserted by the identity token.
type Principal struct {
	id   uuid.UUID
	role Role
}

func NewPrincipal(id uuid.UUID, role Role) (Principal, error) {
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	return Principal{id: id, role: role}, nil
}

// CanAccess allows users to act on their own records and staff on anyone's.
func (p Principal) CanAccess(target uuid.UUID) bool {
	return p.id == target || p.role.AtLeast(RoleStaff)
}

func (p Principal) ID() uuid.UUID { return p.id }
func (p Principal) Role() Role    { return p.role }

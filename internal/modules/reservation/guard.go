package reservation

import "campusspaces/internal/domain"

// Capability is one of the operations an identity may invoke. Roles map to
// capability sets; an unknown role holds none, so checks fail closed.
type Capability string

const (
	CapBookForSelf      Capability = "book_for_self"
	CapListAll          Capability = "list_all"
	CapChangeAnyStatus  Capability = "change_any_status"
	CapCancelOwnPending Capability = "cancel_own_pending"
)

var roleCapabilities = map[domain.UserRole]map[Capability]bool{
	domain.RoleUser: {
		CapBookForSelf:      true,
		CapCancelOwnPending: true,
	},
	domain.RoleAdmin: {
		CapBookForSelf:      true,
		CapListAll:          true,
		CapChangeAnyStatus:  true,
		CapCancelOwnPending: true,
	},
}

func HasCapability(id domain.Identity, cap Capability) bool {
	return roleCapabilities[id.Role][cap]
}

// RequireCapability returns ErrForbidden before any mutation when the
// identity lacks the capability.
func RequireCapability(id domain.Identity, cap Capability) error {
	if !HasCapability(id, cap) {
		return ErrForbidden
	}
	return nil
}

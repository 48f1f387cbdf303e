package reservation

import "campusspaces/internal/domain"

// Legal lifecycle edges. Cancelled and completed are terminal.
var transitions = map[domain.ReservationStatus]map[domain.ReservationStatus]bool{
	domain.ReservationPending: {
		domain.ReservationConfirmed: true,
		domain.ReservationCancelled: true,
	},
	domain.ReservationConfirmed: {
		domain.ReservationCompleted: true,
		domain.ReservationCancelled: true,
	},
}

func CanTransition(from, to domain.ReservationStatus) bool {
	return transitions[from][to]
}

// AuthorizeTransition validates the edge and the actor's authority over it.
// Admins may drive any legal edge; a user may only cancel their own
// still-pending reservation. Edge legality is checked first, so an
// unauthorized request for a nonexistent edge reports IllegalTransition.
func AuthorizeTransition(actor domain.Identity, r *domain.Reservation, to domain.ReservationStatus) error {
	if !to.Valid() || !CanTransition(r.Status, to) {
		return ErrIllegalTransition
	}

	if HasCapability(actor, CapChangeAnyStatus) {
		return nil
	}

	selfCancel := to == domain.ReservationCancelled &&
		r.Status == domain.ReservationPending &&
		actor.UserID == r.UserID
	if selfCancel && HasCapability(actor, CapCancelOwnPending) {
		return nil
	}

	return ErrForbidden
}

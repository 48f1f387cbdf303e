package reservation

import (
	"context"
	"time"

	"campusspaces/internal/domain"
)

// validateWindow rejects malformed windows before any other component runs.
func validateWindow(w domain.TimeWindow, now time.Time) error {
	if !w.Start.Before(w.End) {
		return ErrInvalidWindow
	}
	today := now.UTC().Truncate(24 * time.Hour)
	if w.Date.Before(today) {
		return ErrPastDate
	}
	return nil
}

// AvailabilityEngine decides whether a requested (space, window) pair may
// become a new reservation.
type AvailabilityEngine struct {
	reservations ReservationStore
}

func NewAvailabilityEngine(reservations ReservationStore) *AvailabilityEngine {
	return &AvailabilityEngine{reservations: reservations}
}

// Check returns nil when the window is free, or a *ConflictError naming the
// lowest-id pending/confirmed reservation that overlaps it. The store
// returns rows ordered by id ascending, so the first overlap wins the
// tie-break.
func (e *AvailabilityEngine) Check(ctx context.Context, spaceID int64, w domain.TimeWindow) error {
	existing, err := e.reservations.ListActiveForSpaceDate(ctx, spaceID, w.Date)
	if err != nil {
		return err
	}

	for i := range existing {
		if w.Overlaps(existing[i].Window()) {
			return &ConflictError{ExistingID: existing[i].ID}
		}
	}
	return nil
}

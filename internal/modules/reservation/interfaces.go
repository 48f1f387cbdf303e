package reservation

import (
	"context"
	"time"

	"campusspaces/internal/domain"
)

// ReservationStore is the persistence surface the ledger needs.
type ReservationStore interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListActiveForSpaceDate(ctx context.Context, spaceID int64, date time.Time) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// SpaceCatalog supplies read-only space attributes. The catalog module owns
// the data; the ledger only resolves ids through it.
type SpaceCatalog interface {
	GetSpace(ctx context.Context, id int64) (*domain.Space, error)
}

// EventSink receives lifecycle events after a successful mutation. A nil
// sink is valid and disables publishing.
type EventSink interface {
	ReservationCreated(r *domain.Reservation)
	ReservationStatusChanged(r *domain.Reservation)
}

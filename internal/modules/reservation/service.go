package reservation

import (
	"context"
	"errors"
	"time"

	"campusspaces/internal/domain"
	"campusspaces/internal/modules/catalog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Scope selects whose reservations a list call returns.
type Scope string

const (
	ScopeSelf Scope = "self"
	ScopeAll  Scope = "all"
)

type Service struct {
	reservations ReservationStore
	spaces       SpaceCatalog
	availability *AvailabilityEngine
	events       EventSink
	locks        *spaceDayLocks
}

func NewService(reservations ReservationStore, spaces SpaceCatalog, events EventSink) *Service {
	return &Service{
		reservations: reservations,
		spaces:       spaces,
		availability: NewAvailabilityEngine(reservations),
		events:       events,
		locks:        newSpaceDayLocks(),
	}
}

// CreateReservation runs the whole booking pipeline: guard, window
// validation, space resolution, availability check, pricing, persist. The
// per-(space, date) lock spans the check and the commit so no overlapping
// reservation can be admitted in between.
func (s *Service) CreateReservation(ctx context.Context, actor domain.Identity, req CreateReservationRequest) (*domain.Reservation, error) {
	if err := RequireCapability(actor, CapBookForSelf); err != nil {
		return nil, err
	}

	w, err := parseWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := validateWindow(w, time.Now()); err != nil {
		return nil, err
	}

	reason := domain.ReservationReason(req.Reason)
	if !reason.Valid() {
		return nil, ErrValidation
	}
	if reason != domain.ReasonOther {
		req.ReasonDetail = ""
	}

	unlock := s.locks.Lock(req.SpaceID, w.Date)
	defer unlock()

	space, err := s.resolveActiveSpace(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	if err := s.availability.Check(ctx, req.SpaceID, w); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r := &domain.Reservation{
		UserID:       actor.UserID,
		SpaceID:      space.ID,
		Date:         w.Date,
		StartTime:    w.Start,
		EndTime:      w.End,
		Reason:       reason,
		ReasonDetail: req.ReasonDetail,
		TotalPrice:   ComputePrice(space, w),
		Status:       domain.ReservationPending,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			(pgErr.Code == "23505" || pgErr.Code == "23P01") &&
			pgErr.ConstraintName == "idx_no_double_booking" {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.events != nil {
		s.events.ReservationCreated(r)
	}
	return r, nil
}

// CheckAvailability answers whether the window could be booked right now.
// Validation failures surface as errors; a clean check returns the result
// with the blocking reservation id when occupied.
func (s *Service) CheckAvailability(ctx context.Context, spaceID int64, dateStr, startStr, endStr string) (*AvailabilityResult, error) {
	w, err := parseWindow(dateStr, startStr, endStr)
	if err != nil {
		return nil, err
	}
	if err := validateWindow(w, time.Now()); err != nil {
		return nil, err
	}

	if _, err := s.resolveActiveSpace(ctx, spaceID); err != nil {
		return nil, err
	}

	if err := s.availability.Check(ctx, spaceID, w); err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			id := conflict.ExistingID
			return &AvailabilityResult{Available: false, ConflictWith: &id}, nil
		}
		return nil, err
	}
	return &AvailabilityResult{Available: true}, nil
}

// DayAvailability returns the occupied slots of a space on one calendar day.
func (s *Service) DayAvailability(ctx context.Context, spaceID int64, dateStr string) (*DayAvailabilityResponse, error) {
	day, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, ErrInvalidWindow
	}
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	if _, err := s.resolveActiveSpace(ctx, spaceID); err != nil {
		return nil, err
	}

	existing, err := s.reservations.ListActiveForSpaceDate(ctx, spaceID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]BookedSlot, 0, len(existing))
	for i := range existing {
		slots = append(slots, BookedSlot{
			Start:  existing[i].StartTime.Format(timeLayout),
			End:    existing[i].EndTime.Format(timeLayout),
			Status: string(existing[i].Status),
		})
	}

	return &DayAvailabilityResponse{
		SpaceID:     spaceID,
		Date:        dateStr,
		BookedSlots: slots,
	}, nil
}

// ListReservations returns the actor's own reservations, or every
// reservation when scope is "all" and the actor may list all. Results are
// ordered by creation time ascending.
func (s *Service) ListReservations(ctx context.Context, actor domain.Identity, scope Scope) ([]domain.Reservation, error) {
	switch scope {
	case ScopeAll:
		if err := RequireCapability(actor, CapListAll); err != nil {
			return nil, err
		}
		return s.reservations.ListAll(ctx)
	case ScopeSelf, "":
		return s.reservations.ListByUser(ctx, actor.UserID)
	default:
		return nil, ErrValidation
	}
}

// ChangeStatus drives a reservation through the state machine. The target
// status string is rejected before anything else when it is outside the
// defined set; authority failures leave the reservation unchanged.
func (s *Service) ChangeStatus(ctx context.Context, actor domain.Identity, reservationID int64, newStatus string) (*domain.Reservation, error) {
	st := domain.ReservationStatus(newStatus)
	if !st.Valid() {
		return nil, ErrIllegalTransition
	}

	r, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	unlock := s.locks.Lock(r.SpaceID, r.Date)
	defer unlock()

	// re-read under the lock; another request may have moved it
	r, err = s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := AuthorizeTransition(actor, r, st); err != nil {
		return nil, err
	}

	if err := s.reservations.UpdateStatus(ctx, reservationID, st); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	r.Status = st
	r.UpdatedAt = time.Now().UTC()

	if s.events != nil {
		s.events.ReservationStatusChanged(r)
	}
	return r, nil
}

// resolveActiveSpace maps an unknown or inactive space to ErrInvalidSpace.
// Any other catalog failure is a storage problem and propagates unchanged.
func (s *Service) resolveActiveSpace(ctx context.Context, spaceID int64) (*domain.Space, error) {
	space, err := s.spaces.GetSpace(ctx, spaceID)
	if err != nil {
		if errors.Is(err, catalog.ErrSpaceNotFound) {
			return nil, ErrInvalidSpace
		}
		return nil, err
	}
	if !space.IsActive {
		return nil, ErrInvalidSpace
	}
	return space, nil
}

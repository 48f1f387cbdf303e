package repository

import (
	"context"
	"time"

	"campusspaces/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id"`
	SpaceID      int64     `gorm:"column:space_id"`
	Date         time.Time `gorm:"column:date"`
	StartTime    time.Time `gorm:"column:start_time"`
	EndTime      time.Time `gorm:"column:end_time"`
	Reason       string    `gorm:"column:reason"`
	ReasonDetail *string   `gorm:"column:reason_detail"`
	TotalPrice   float64   `gorm:"column:total_price"`
	Status       string    `gorm:"column:status"`
	Notes        *string   `gorm:"column:notes"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var reasonDetail, notes string
	if m.ReasonDetail != nil {
		reasonDetail = *m.ReasonDetail
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Reservation{
		ID:           m.ID,
		UserID:       m.UserID,
		SpaceID:      m.SpaceID,
		Date:         m.Date,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Reason:       domain.ReservationReason(m.Reason),
		ReasonDetail: reasonDetail,
		TotalPrice:   m.TotalPrice,
		Status:       domain.ReservationStatus(m.Status),
		Notes:        notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var reasonDetail, notes *string
	if r.ReasonDetail != "" {
		v := r.ReasonDetail
		reasonDetail = &v
	}
	if r.Notes != "" {
		v := r.Notes
		notes = &v
	}

	return reservationModel{
		ID:           r.ID,
		UserID:       r.UserID,
		SpaceID:      r.SpaceID,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Reason:       string(r.Reason),
		ReasonDetail: reasonDetail,
		TotalPrice:   r.TotalPrice,
		Status:       string(r.Status),
		Notes:        notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// ListActiveForSpaceDate returns pending and confirmed reservations for the
// space on the given calendar day, ordered by id ascending. Date must be
// normalized to midnight UTC by the caller.
func (r *ReservationRepository) ListActiveForSpaceDate(ctx context.Context, spaceID int64, date time.Time) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("space_id = ? AND date = ? AND status IN ?",
			spaceID, date, []string{string(domain.ReservationPending), string(domain.ReservationConfirmed)}).
		Order("id ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// ListByUser returns all of a user's reservations ordered by creation time
// ascending; id breaks ties so repeated reads return an identical order.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

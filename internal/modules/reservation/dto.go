package reservation

import (
	"time"

	"campusspaces/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type CreateReservationRequest struct {
	SpaceID      int64  `json:"space_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
	ReasonDetail string `json:"reason_detail"`
	Notes        string `json:"notes"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// parseWindow builds a TimeWindow with Start/End anchored on the parsed
// date, so windows compare directly as instants. Any malformed part maps to
// InvalidWindow.
func parseWindow(dateStr, startStr, endStr string) (domain.TimeWindow, error) {
	day, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return domain.TimeWindow{}, ErrInvalidWindow
	}
	start, err := time.Parse(timeLayout, startStr)
	if err != nil {
		return domain.TimeWindow{}, ErrInvalidWindow
	}
	end, err := time.Parse(timeLayout, endStr)
	if err != nil {
		return domain.TimeWindow{}, ErrInvalidWindow
	}

	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return domain.TimeWindow{
		Date:  date,
		Start: time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC),
		End:   time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, time.UTC),
	}, nil
}

type ReservationView struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	SpaceID      int64     `json:"space_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Reason       string    `json:"reason"`
	ReasonDetail string    `json:"reason_detail,omitempty"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toView(r *domain.Reservation) ReservationView {
	return ReservationView{
		ID:           r.ID,
		UserID:       r.UserID,
		SpaceID:      r.SpaceID,
		Date:         r.Date.Format(dateLayout),
		StartTime:    r.StartTime.Format(timeLayout),
		EndTime:      r.EndTime.Format(timeLayout),
		Reason:       string(r.Reason),
		ReasonDetail: r.ReasonDetail,
		TotalPrice:   r.TotalPrice,
		Status:       string(r.Status),
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}

func toViews(rs []domain.Reservation) []ReservationView {
	out := make([]ReservationView, 0, len(rs))
	for i := range rs {
		out = append(out, toView(&rs[i]))
	}
	return out
}

// AvailabilityResult is the outcome of a window check.
type AvailabilityResult struct {
	Available    bool   `json:"available"`
	ConflictWith *int64 `json:"conflicting_reservation_id,omitempty"`
}

type BookedSlot struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

type DayAvailabilityResponse struct {
	SpaceID     int64        `json:"space_id"`
	Date        string       `json:"date"`
	BookedSlots []BookedSlot `json:"booked_slots"`
}

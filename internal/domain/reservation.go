package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted out of s.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCancelled || s == ReservationCompleted
}

type ReservationReason string

const (
	ReasonAcademicClass   ReservationReason = "academic_class"
	ReasonResearchProject ReservationReason = "research_project"
	ReasonGroupStudy      ReservationReason = "group_study"
	ReasonAcademicEvent   ReservationReason = "academic_event"
	ReasonSports          ReservationReason = "sports"
	ReasonPersonalProject ReservationReason = "personal_project"
	ReasonPractice        ReservationReason = "practice"
	ReasonOther           ReservationReason = "other"
)

func ReservationReasons() []ReservationReason {
	return []ReservationReason{
		ReasonAcademicClass,
		ReasonResearchProject,
		ReasonGroupStudy,
		ReasonAcademicEvent,
		ReasonSports,
		ReasonPersonalProject,
		ReasonPractice,
		ReasonOther,
	}
}

func (r ReservationReason) Valid() bool {
	for _, v := range ReservationReasons() {
		if r == v {
			return true
		}
	}
	return false
}

// TimeWindow is a single-day half-open interval [Start, End). Start and End
// are anchored on Date, so instants compare directly across windows.
type TimeWindow struct {
	Date  time.Time `json:"date"`
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps uses half-open comparison: windows that only touch at an endpoint
// do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

type Reservation struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id" validate:"required"`
	SpaceID      int64             `json:"space_id" validate:"required"`
	Date         time.Time         `json:"date"`
	StartTime    time.Time         `json:"start_time"`
	EndTime      time.Time         `json:"end_time"`
	Reason       ReservationReason `json:"reason"`
	ReasonDetail string            `json:"reason_detail,omitempty"`
	TotalPrice   float64           `json:"total_price" validate:"gte=0"`
	Status       ReservationStatus `json:"status"`
	Notes        string            `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Space *Space `json:"space,omitempty" gorm:"foreignKey:SpaceID"`
}

func (r *Reservation) Window() TimeWindow {
	return TimeWindow{Date: r.Date, Start: r.StartTime, End: r.EndTime}
}

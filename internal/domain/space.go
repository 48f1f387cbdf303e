package domain

import "time"

type SpaceCategory string

const (
	CategoryLaboratory  SpaceCategory = "laboratory"
	CategorySportsCourt SpaceCategory = "sports_court"
	CategoryStudyRoom   SpaceCategory = "study_room"
	CategoryAuditorium  SpaceCategory = "auditorium"
)

func SpaceCategories() []SpaceCategory {
	return []SpaceCategory{
		CategoryLaboratory,
		CategorySportsCourt,
		CategoryStudyRoom,
		CategoryAuditorium,
	}
}

func (c SpaceCategory) Valid() bool {
	switch c {
	case CategoryLaboratory, CategorySportsCourt, CategoryStudyRoom, CategoryAuditorium:
		return true
	}
	return false
}

type Space struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location" validate:"required"`
	Capacity    int           `json:"capacity" validate:"required,gt=0"`
	Category    SpaceCategory `json:"category" validate:"required"`
	HourlyRate  float64       `json:"hourly_rate" validate:"gte=0"`
	Equipment   string        `json:"equipment,omitempty" gorm:"type:text"`
	ImageURL    string        `json:"image_url,omitempty"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

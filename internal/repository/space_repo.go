package repository

import (
	"context"
	"time"

	"campusspaces/internal/domain"

	"gorm.io/gorm"
)

type SpaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

type spaceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Location    string    `gorm:"column:location"`
	Capacity    int       `gorm:"column:capacity"`
	Category    string    `gorm:"column:category"`
	HourlyRate  float64   `gorm:"column:hourly_rate"`
	Equipment   *string   `gorm:"column:equipment"`
	ImageURL    *string   `gorm:"column:image_url"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (spaceModel) TableName() string { return "spaces" }

func toDomainSpace(m spaceModel) *domain.Space {
	var description, equipment, imageURL string
	if m.Description != nil {
		description = *m.Description
	}
	if m.Equipment != nil {
		equipment = *m.Equipment
	}
	if m.ImageURL != nil {
		imageURL = *m.ImageURL
	}

	return &domain.Space{
		ID:          m.ID,
		Name:        m.Name,
		Description: description,
		Location:    m.Location,
		Capacity:    m.Capacity,
		Category:    domain.SpaceCategory(m.Category),
		HourlyRate:  m.HourlyRate,
		Equipment:   equipment,
		ImageURL:    imageURL,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSpaceModel(s *domain.Space) spaceModel {
	var description, equipment, imageURL *string
	if s.Description != "" {
		v := s.Description
		description = &v
	}
	if s.Equipment != "" {
		v := s.Equipment
		equipment = &v
	}
	if s.ImageURL != "" {
		v := s.ImageURL
		imageURL = &v
	}

	return spaceModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: description,
		Location:    s.Location,
		Capacity:    s.Capacity,
		Category:    string(s.Category),
		HourlyRate:  s.HourlyRate,
		Equipment:   equipment,
		ImageURL:    imageURL,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	m := toSpaceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSpace(m)
	return nil
}

func (r *SpaceRepository) Update(ctx context.Context, s *domain.Space) error {
	m := toSpaceModel(s)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSpace(m)
	return nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	var m spaceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSpace(m), nil
}

// ListActive returns active spaces, optionally filtered by category,
// ordered by name.
func (r *SpaceRepository) ListActive(ctx context.Context, category domain.SpaceCategory) ([]domain.Space, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", string(category))
	}

	var rows []spaceModel
	tx := q.Order("name ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Space, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSpace(m))
	}
	return out, nil
}

package catalog

import (
	"context"
	"errors"
	"time"

	"campusspaces/internal/domain"
	pkgvalidator "campusspaces/internal/pkg/validator"
	"campusspaces/internal/repository"

	"gorm.io/gorm"
)

// Service owns the space registry. The reservation core consumes it through
// its SpaceCatalog interface and treats the data as read-only reference;
// mutation happens only through the admin endpoints here.
type Service struct {
	spaces *repository.SpaceRepository
}

func NewService(spaces *repository.SpaceRepository) *Service {
	return &Service{spaces: spaces}
}

func (s *Service) GetSpace(ctx context.Context, id int64) (*domain.Space, error) {
	space, err := s.spaces.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return space, nil
}

func (s *Service) ListSpaces(ctx context.Context, category string) ([]domain.Space, error) {
	cat := domain.SpaceCategory(category)
	if category != "" && !cat.Valid() {
		return nil, ErrInvalidCategory
	}
	return s.spaces.ListActive(ctx, cat)
}

func (s *Service) CreateSpace(ctx context.Context, req CreateSpaceRequest) (*domain.Space, error) {
	cat := domain.SpaceCategory(req.Category)
	if !cat.Valid() {
		return nil, ErrInvalidCategory
	}

	now := time.Now().UTC()
	space := &domain.Space{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Category:    cat,
		HourlyRate:  req.HourlyRate,
		Equipment:   req.Equipment,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if errs := pkgvalidator.Validate(space); errs != nil {
		return nil, ErrInvalidSpaceData
	}

	if err := s.spaces.Create(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *Service) UpdateSpace(ctx context.Context, id int64, req UpdateSpaceRequest) (*domain.Space, error) {
	space, err := s.GetSpace(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		space.Name = req.Name
	}
	if req.Description != nil {
		space.Description = *req.Description
	}
	if req.Location != "" {
		space.Location = req.Location
	}
	if req.Capacity > 0 {
		space.Capacity = req.Capacity
	}
	if req.Category != "" {
		cat := domain.SpaceCategory(req.Category)
		if !cat.Valid() {
			return nil, ErrInvalidCategory
		}
		space.Category = cat
	}
	if req.HourlyRate != nil {
		space.HourlyRate = *req.HourlyRate
	}
	if req.Equipment != nil {
		space.Equipment = *req.Equipment
	}
	if req.ImageURL != nil {
		space.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		space.IsActive = *req.IsActive
	}
	space.UpdatedAt = time.Now().UTC()

	if errs := pkgvalidator.Validate(space); errs != nil {
		return nil, ErrInvalidSpaceData
	}

	if err := s.spaces.Update(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

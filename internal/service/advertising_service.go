package service

import (
	"context"

	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/AlexanderSS88/adboard/internal/repository"
)

type AdvertisingService struct {
	advRepo repository.AdvertisingRepository
}

func NewAdvertisingService(advRepo repository.AdvertisingRepository) *AdvertisingService {
	return &AdvertisingService{advRepo: advRepo}
}

type CreateAdvertisingInput struct {
	OwnerID     uint
	Title       string
	Description string
}

// UpdateAdvertisingInput carries patch semantics: nil fields are left
// untouched.
type UpdateAdvertisingInput struct {
	OwnerID     *uint
	Title       *string
	Description *string
}

func (s *AdvertisingService) Create(ctx context.Context, input CreateAdvertisingInput) (*domain.Advertising, error) {
	adv := &domain.Advertising{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := s.advRepo.Create(ctx, adv); err != nil {
		return nil, err
	}

	return adv, nil
}

func (s *AdvertisingService) Get(ctx context.Context, id uint) (*domain.Advertising, error) {
	return s.advRepo.GetByID(ctx, id)
}

func (s *AdvertisingService) Update(ctx context.Context, id uint, input UpdateAdvertisingInput) (*domain.Advertising, error) {
	adv, err := s.advRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.OwnerID != nil {
		adv.OwnerID = *input.OwnerID
	}
	if input.Title != nil {
		adv.Title = *input.Title
	}
	if input.Description != nil {
		adv.Description = *input.Description
	}

	if err := s.advRepo.Update(ctx, adv); err != nil {
		return nil, err
	}

	return adv, nil
}

func (s *AdvertisingService) Delete(ctx context.Context, id uint) error {
	if _, err := s.advRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.advRepo.Delete(ctx, id)
}

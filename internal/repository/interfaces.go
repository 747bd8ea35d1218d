package repository

import (
	"context"

	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}

type TokenRepository interface {
	Create(ctx context.Context, token *domain.Token) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Token, error)
	GetByUserID(ctx context.Context, userID uint) ([]*domain.Token, error)
}

type AdvertisingRepository interface {
	Create(ctx context.Context, adv *domain.Advertising) error
	GetByID(ctx context.Context, id uint) (*domain.Advertising, error)
	GetByOwnerID(ctx context.Context, ownerID uint) ([]*domain.Advertising, error)
	Update(ctx context.Context, adv *domain.Advertising) error
	Delete(ctx context.Context, id uint) error
}

type Repositories struct {
	User        UserRepository
	Token       TokenRepository
	Advertising AdvertisingRepository
}

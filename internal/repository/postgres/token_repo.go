package postgres

import (
	"context"

	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *tokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *domain.Token) error {
	return translateError(r.db.WithContext(ctx).Create(token).Error)
}

func (r *tokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Token, error) {
	var token domain.Token
	err := r.db.WithContext(ctx).Preload("User").First(&token, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &token, nil
}

func (r *tokenRepository) GetByUserID(ctx context.Context, userID uint) ([]*domain.Token, error) {
	var tokens []*domain.Token
	err := r.db.WithContext(ctx).Find(&tokens, "user_id = ?", userID).Error
	if err != nil {
		return nil, translateError(err)
	}
	return tokens, nil
}

package postgres

import (
	"context"

	"github.com/AlexanderSS88/adboard/internal/domain"
	"gorm.io/gorm"
)

type advertisingRepository struct {
	db *gorm.DB
}

func NewAdvertisingRepository(db *gorm.DB) *advertisingRepository {
	return &advertisingRepository{db: db}
}

func (r *advertisingRepository) Create(ctx context.Context, adv *domain.Advertising) error {
	return translateError(r.db.WithContext(ctx).Create(adv).Error)
}

func (r *advertisingRepository) GetByID(ctx context.Context, id uint) (*domain.Advertising, error) {
	var adv domain.Advertising
	err := r.db.WithContext(ctx).First(&adv, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &adv, nil
}

func (r *advertisingRepository) GetByOwnerID(ctx context.Context, ownerID uint) ([]*domain.Advertising, error) {
	var advs []*domain.Advertising
	err := r.db.WithContext(ctx).Find(&advs, "owner_id = ?", ownerID).Error
	if err != nil {
		return nil, translateError(err)
	}
	return advs, nil
}

func (r *advertisingRepository) Update(ctx context.Context, adv *domain.Advertising) error {
	return translateError(r.db.WithContext(ctx).Save(adv).Error)
}

func (r *advertisingRepository) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Delete(&domain.Advertising{}, "id = ?", id).Error)
}

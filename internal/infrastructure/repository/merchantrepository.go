package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/mappers"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/db"
)

type MerchantRepository struct {
	db     *gorm.DB
	mapper mappers.MerchantMapper
}

func NewMerchantRepository(gormDB *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: gormDB, mapper: mappers.NewMerchantMapper()}
}

func (r *MerchantRepository) Create(ctx context.Context, m *merchant.Merchant) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map merchant: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	return m.SetID(model.ID)
}

func (r *MerchantRepository) GetByID(ctx context.Context, id uint) (*merchant.Merchant, error) {
	var model models.MerchantModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MerchantRepository) GetByEmail(ctx context.Context, email string) (*merchant.Merchant, error) {
	var model models.MerchantModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get merchant by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/domain/creator"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/mappers"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/db"
)

type CreatorRepository struct {
	db     *gorm.DB
	mapper mappers.CreatorMapper
}

func NewCreatorRepository(gormDB *gorm.DB) *CreatorRepository {
	return &CreatorRepository{db: gormDB, mapper: mappers.NewCreatorMapper()}
}

func (r *CreatorRepository) Create(ctx context.Context, cr *creator.Creator) error {
	model, err := r.mapper.ToModel(cr)
	if err != nil {
		return fmt.Errorf("failed to map creator: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create creator: %w", err)
	}

	return cr.SetID(model.ID)
}

func (r *CreatorRepository) Update(ctx context.Context, cr *creator.Creator) error {
	model, err := r.mapper.ToModel(cr)
	if err != nil {
		return fmt.Errorf("failed to map creator: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CreatorModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"display_name":      model.DisplayName,
			"bio":               model.Bio,
			"community_premium": model.CommunityPremium,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update creator: %w", result.Error)
	}
	return nil
}

func (r *CreatorRepository) GetByID(ctx context.Context, id uint) (*creator.Creator, error) {
	var model models.CreatorModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CreatorRepository) GetByUsername(ctx context.Context, username string) (*creator.Creator, error) {
	var model models.CreatorModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("username = ?", username).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get creator by username: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CreatorRepository) GetByMerchantID(ctx context.Context, merchantID uint) (*creator.Creator, error) {
	var model models.CreatorModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("merchant_id = ?", merchantID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get creator by merchant_id: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/domain/platform"
	subvo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/mappers"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/db"
)

type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
}

func NewPlanRepository(gormDB *gorm.DB) *PlanRepository {
	return &PlanRepository{db: gormDB, mapper: mappers.NewPlanMapper()}
}

func (r *PlanRepository) Create(ctx context.Context, plan *platform.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to map plan: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return plan.SetID(model.ID)
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*platform.Plan, error) {
	var model models.PlanModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepository) GetByCode(ctx context.Context, code string) (*platform.Plan, error) {
	var model models.PlanModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan by code: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepository) List(ctx context.Context) ([]*platform.Plan, error) {
	var modelList []*models.PlanModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("amount ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

type PlatformSubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.PlatformSubscriptionMapper
}

func NewPlatformSubscriptionRepository(gormDB *gorm.DB) *PlatformSubscriptionRepository {
	return &PlatformSubscriptionRepository{db: gormDB, mapper: mappers.NewPlatformSubscriptionMapper()}
}

func (r *PlatformSubscriptionRepository) Create(ctx context.Context, sub *platform.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map platform subscription: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create platform subscription: %w", err)
	}

	return sub.SetID(model.ID)
}

func (r *PlatformSubscriptionRepository) Update(ctx context.Context, sub *platform.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map platform subscription: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlatformSubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plan_id":              model.PlanID,
			"status":               model.Status,
			"current_period_start": model.CurrentPeriodStart,
			"current_period_end":   model.CurrentPeriodEnd,
			"trial_ends_at":        model.TrialEndsAt,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update platform subscription: %w", result.Error)
	}
	return nil
}

func (r *PlatformSubscriptionRepository) GetByMerchantID(ctx context.Context, merchantID uint) (*platform.Subscription, error) {
	var model models.PlatformSubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("merchant_id = ?", merchantID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get platform subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlatformSubscriptionRepository) FindExpiredTrials(ctx context.Context, now time.Time) ([]*platform.Subscription, error) {
	var modelList []*models.PlatformSubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", subvo.StatusTrialing.String()).
		Where("trial_ends_at IS NOT NULL AND trial_ends_at <= ?", now).
		Order("trial_ends_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find expired trials: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

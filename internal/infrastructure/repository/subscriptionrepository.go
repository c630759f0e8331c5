package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/domain/subscription"
	vo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/mappers"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/db"
)

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
}

func NewSubscriptionRepository(gormDB *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: gormDB, mapper: mappers.NewSubscriptionMapper()}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	return sub.SetID(model.ID)
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":               model.Status,
			"current_period_start": model.CurrentPeriodStart,
			"current_period_end":   model.CurrentPeriodEnd,
			"expired_at":           model.ExpiredAt,
			"cancelled_at":         model.CancelledAt,
			"cancel_reason":        model.CancelReason,
			"notified_expiring_at": model.NotifiedExpiringAt,
			"notified_expired_at":  model.NotifiedExpiredAt,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepository) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepository) ListByMerchant(ctx context.Context, merchantID uint, page, pageSize int) ([]*subscription.Subscription, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.SubscriptionModel{}).
		Where("merchant_id = ?", merchantID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var modelList []*models.SubscriptionModel
	if err := tx.
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

// ExistsEntitling checks for an active or trialing subscription on the phone
// covering any of the products with an unexpired period. One indexed query,
// no row loading.
func (r *SubscriptionRepository) ExistsEntitling(ctx context.Context, customerPhone string, productIDs []uint, now time.Time) (bool, error) {
	if len(productIDs) == 0 {
		return false, nil
	}

	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("customer_phone = ?", customerPhone).
		Where("product_id IN ?", productIDs).
		Where("status IN ?", []string{vo.StatusActive.String(), vo.StatusTrialing.String()}).
		Where("current_period_end >= ?", now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check entitlement: %w", err)
	}
	return count > 0, nil
}

func (r *SubscriptionRepository) GetByPhoneAndProduct(ctx context.Context, customerPhone string, productID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("customer_phone = ? AND product_id = ?", customerPhone, productID).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription by phone and product: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// FindLapsed returns subscriptions whose period ended before now and whose
// status can still move through the lifecycle.
func (r *SubscriptionRepository) FindLapsed(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status IN ?", []string{vo.StatusActive.String(), vo.StatusPastDue.String()}).
		Where("current_period_end < ?", now).
		Order("current_period_end ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find lapsed subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SubscriptionRepository) FindExpiringWithin(ctx context.Context, now time.Time, window time.Duration) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", vo.StatusActive.String()).
		Where("current_period_end > ? AND current_period_end <= ?", now, now.Add(window)).
		Order("current_period_end ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find expiring subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SubscriptionRepository) FindRecentlyExpired(ctx context.Context, now time.Time, lookback time.Duration) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", vo.StatusExpired.String()).
		Where("expired_at >= ? AND expired_at <= ?", now.Add(-lookback), now).
		Order("expired_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find recently expired subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

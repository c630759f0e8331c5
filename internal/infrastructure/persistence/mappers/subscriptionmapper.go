package mappers

import (
	"fmt"

	"github.com/lipagate/lipagate/internal/domain/subscription"
	vo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.SubscriptionStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	entity, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:                 model.ID,
		SID:                model.SID,
		MerchantID:         model.MerchantID,
		CustomerPhone:      model.CustomerPhone,
		ProductID:          model.ProductID,
		Status:             status,
		CurrentPeriodStart: model.CurrentPeriodStart,
		CurrentPeriodEnd:   model.CurrentPeriodEnd,
		ExpiredAt:          model.ExpiredAt,
		CancelledAt:        model.CancelledAt,
		CancelReason:       model.CancelReason,
		NotifiedExpiringAt: model.NotifiedExpiringAt,
		NotifiedExpiredAt:  model.NotifiedExpiredAt,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}
	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:                 entity.ID(),
		SID:                entity.SID(),
		MerchantID:         entity.MerchantID(),
		CustomerPhone:      entity.CustomerPhone(),
		ProductID:          entity.ProductID(),
		Status:             entity.Status().String(),
		CurrentPeriodStart: entity.CurrentPeriodStart(),
		CurrentPeriodEnd:   entity.CurrentPeriodEnd(),
		ExpiredAt:          entity.ExpiredAt(),
		CancelledAt:        entity.CancelledAt(),
		CancelReason:       entity.CancelReason(),
		NotifiedExpiringAt: entity.NotifiedExpiringAt(),
		NotifiedExpiredAt:  entity.NotifiedExpiredAt(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}

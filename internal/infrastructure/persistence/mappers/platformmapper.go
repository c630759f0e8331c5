package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/lipagate/lipagate/internal/domain/platform"
	subvo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/mapper"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*platform.Plan, error)
	ToModel(entity *platform.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*platform.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*platform.Plan, error) {
	if model == nil {
		return nil, nil
	}

	var features platform.Features
	if model.Features != nil {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan features: %w", err)
		}
	}

	entity, err := platform.ReconstructPlan(
		model.ID,
		model.SID,
		model.Code,
		model.Name,
		features,
		model.TrialDays,
		model.Amount,
		model.Currency,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}
	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *platform.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	var featuresJSON datatypes.JSON
	data, err := json.Marshal(entity.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan features: %w", err)
	}
	featuresJSON = data

	return &models.PlanModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Code:      entity.Code(),
		Name:      entity.Name(),
		Features:  featuresJSON,
		TrialDays: entity.TrialDays(),
		Amount:    entity.Amount(),
		Currency:  entity.Currency(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(modelList []*models.PlanModel) ([]*platform.Plan, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PlanModel) uint { return model.ID })
}

type PlatformSubscriptionMapper interface {
	ToEntity(model *models.PlatformSubscriptionModel) (*platform.Subscription, error)
	ToModel(entity *platform.Subscription) (*models.PlatformSubscriptionModel, error)
	ToEntities(models []*models.PlatformSubscriptionModel) ([]*platform.Subscription, error)
}

type PlatformSubscriptionMapperImpl struct{}

func NewPlatformSubscriptionMapper() PlatformSubscriptionMapper {
	return &PlatformSubscriptionMapperImpl{}
}

func (m *PlatformSubscriptionMapperImpl) ToEntity(model *models.PlatformSubscriptionModel) (*platform.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := subvo.SubscriptionStatus(model.Status)
	if !subvo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid platform subscription status: %s", model.Status)
	}

	entity, err := platform.ReconstructSubscription(platform.ReconstructSubscriptionParams{
		ID:                 model.ID,
		SID:                model.SID,
		MerchantID:         model.MerchantID,
		PlanID:             model.PlanID,
		Status:             status,
		CurrentPeriodStart: model.CurrentPeriodStart,
		CurrentPeriodEnd:   model.CurrentPeriodEnd,
		TrialEndsAt:        model.TrialEndsAt,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct platform subscription entity: %w", err)
	}
	return entity, nil
}

func (m *PlatformSubscriptionMapperImpl) ToModel(entity *platform.Subscription) (*models.PlatformSubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlatformSubscriptionModel{
		ID:                 entity.ID(),
		SID:                entity.SID(),
		MerchantID:         entity.MerchantID(),
		PlanID:             entity.PlanID(),
		Status:             entity.Status().String(),
		CurrentPeriodStart: entity.CurrentPeriodStart(),
		CurrentPeriodEnd:   entity.CurrentPeriodEnd(),
		TrialEndsAt:        entity.TrialEndsAt(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *PlatformSubscriptionMapperImpl) ToEntities(modelList []*models.PlatformSubscriptionModel) ([]*platform.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PlatformSubscriptionModel) uint { return model.ID })
}

package mappers

import (
	"fmt"

	"github.com/lipagate/lipagate/internal/domain/creator"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/mapper"
)

type CreatorMapper interface {
	ToEntity(model *models.CreatorModel) (*creator.Creator, error)
	ToModel(entity *creator.Creator) (*models.CreatorModel, error)
	ToEntities(models []*models.CreatorModel) ([]*creator.Creator, error)
}

type CreatorMapperImpl struct{}

func NewCreatorMapper() CreatorMapper {
	return &CreatorMapperImpl{}
}

func (m *CreatorMapperImpl) ToEntity(model *models.CreatorModel) (*creator.Creator, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := creator.ReconstructCreator(
		model.ID,
		model.SID,
		model.MerchantID,
		model.Username,
		model.DisplayName,
		model.Bio,
		model.CommunityPremium,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct creator entity: %w", err)
	}
	return entity, nil
}

func (m *CreatorMapperImpl) ToModel(entity *creator.Creator) (*models.CreatorModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CreatorModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		MerchantID:       entity.MerchantID(),
		Username:         entity.Username(),
		DisplayName:      entity.DisplayName(),
		Bio:              entity.Bio(),
		CommunityPremium: entity.CommunityPremium(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *CreatorMapperImpl) ToEntities(modelList []*models.CreatorModel) ([]*creator.Creator, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.CreatorModel) uint { return model.ID })
}

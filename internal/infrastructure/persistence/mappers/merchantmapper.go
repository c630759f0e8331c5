package mappers

import (
	"fmt"

	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/mapper"
)

type MerchantMapper interface {
	ToEntity(model *models.MerchantModel) (*merchant.Merchant, error)
	ToModel(entity *merchant.Merchant) (*models.MerchantModel, error)
	ToEntities(models []*models.MerchantModel) ([]*merchant.Merchant, error)
}

type MerchantMapperImpl struct{}

func NewMerchantMapper() MerchantMapper {
	return &MerchantMapperImpl{}
}

func (m *MerchantMapperImpl) ToEntity(model *models.MerchantModel) (*merchant.Merchant, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := merchant.ReconstructMerchant(
		model.ID,
		model.SID,
		model.Email,
		model.Phone,
		model.PasswordHash,
		model.DisplayName,
		model.Admin,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct merchant entity: %w", err)
	}
	return entity, nil
}

func (m *MerchantMapperImpl) ToModel(entity *merchant.Merchant) (*models.MerchantModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.MerchantModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Email:        entity.Email(),
		Phone:        entity.Phone(),
		PasswordHash: entity.PasswordHash(),
		DisplayName:  entity.DisplayName(),
		Admin:        entity.IsAdmin(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *MerchantMapperImpl) ToEntities(modelList []*models.MerchantModel) ([]*merchant.Merchant, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.MerchantModel) uint { return model.ID })
}

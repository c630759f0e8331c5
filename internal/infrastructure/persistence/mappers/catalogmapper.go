package mappers

import (
	"fmt"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/mapper"
)

type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*catalog.Product, error)
	ToModel(entity *catalog.Product) (*models.ProductModel, error)
	ToEntities(models []*models.ProductModel) ([]*catalog.Product, error)
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToEntity(model *models.ProductModel) (*catalog.Product, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructProduct(
		model.ID,
		model.SID,
		model.MerchantID,
		model.Name,
		model.Description,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product entity: %w", err)
	}
	return entity, nil
}

func (m *ProductMapperImpl) ToModel(entity *catalog.Product) (*models.ProductModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProductModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		MerchantID:  entity.MerchantID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Active:      entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *ProductMapperImpl) ToEntities(modelList []*models.ProductModel) ([]*catalog.Product, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ProductModel) uint { return model.ID })
}

type PriceMapper interface {
	ToEntity(model *models.PriceModel) (*catalog.Price, error)
	ToModel(entity *catalog.Price) (*models.PriceModel, error)
	ToEntities(models []*models.PriceModel) ([]*catalog.Price, error)
}

type PriceMapperImpl struct{}

func NewPriceMapper() PriceMapper {
	return &PriceMapperImpl{}
}

func (m *PriceMapperImpl) ToEntity(model *models.PriceModel) (*catalog.Price, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructPrice(
		model.ID,
		model.SID,
		model.ProductID,
		model.Amount,
		model.Currency,
		catalog.BillingInterval(model.Interval),
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct price entity: %w", err)
	}
	return entity, nil
}

func (m *PriceMapperImpl) ToModel(entity *catalog.Price) (*models.PriceModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PriceModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		ProductID: entity.ProductID(),
		Amount:    entity.Amount(),
		Currency:  entity.Currency(),
		Interval:  string(entity.Interval()),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *PriceMapperImpl) ToEntities(modelList []*models.PriceModel) ([]*catalog.Price, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PriceModel) uint { return model.ID })
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/mappers"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/db"
)

type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(gormDB *gorm.DB) *ProductRepository {
	return &ProductRepository{db: gormDB, mapper: mappers.NewProductMapper()}
}

func (r *ProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	model, err := r.mapper.ToModel(product)
	if err != nil {
		return fmt.Errorf("failed to map product: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return product.SetID(model.ID)
}

func (r *ProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	model, err := r.mapper.ToModel(product)
	if err != nil {
		return fmt.Errorf("failed to map product: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProductModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"active":      model.Active,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var model models.ProductModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProductRepository) GetBySID(ctx context.Context, sid string) (*catalog.Product, error) {
	var model models.ProductModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var modelList []*models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", ids).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by ids: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *ProductRepository) ListByMerchant(ctx context.Context, merchantID uint, activeOnly bool) ([]*catalog.Product, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("merchant_id = ?", merchantID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modelList []*models.ProductModel
	if err := query.Order("created_at ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *ProductRepository) ListIDsByMerchant(ctx context.Context, merchantID uint) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProductModel{}).
		Where("merchant_id = ?", merchantID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}
	return ids, nil
}

type PriceRepository struct {
	db     *gorm.DB
	mapper mappers.PriceMapper
}

func NewPriceRepository(gormDB *gorm.DB) *PriceRepository {
	return &PriceRepository{db: gormDB, mapper: mappers.NewPriceMapper()}
}

func (r *PriceRepository) Create(ctx context.Context, price *catalog.Price) error {
	model, err := r.mapper.ToModel(price)
	if err != nil {
		return fmt.Errorf("failed to map price: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create price: %w", err)
	}

	return price.SetID(model.ID)
}

func (r *PriceRepository) Update(ctx context.Context, price *catalog.Price) error {
	model, err := r.mapper.ToModel(price)
	if err != nil {
		return fmt.Errorf("failed to map price: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PriceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update price: %w", result.Error)
	}
	return nil
}

func (r *PriceRepository) GetByID(ctx context.Context, id uint) (*catalog.Price, error) {
	var model models.PriceModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get price: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PriceRepository) GetBySID(ctx context.Context, sid string) (*catalog.Price, error) {
	var model models.PriceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get price by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PriceRepository) ListByProduct(ctx context.Context, productID uint, activeOnly bool) ([]*catalog.Price, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("product_id = ?", productID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modelList []*models.PriceModel
	if err := query.Order("amount ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// CheapestActiveByProductIDs loads active prices ordered by amount and keeps
// the first one seen per product.
func (r *PriceRepository) CheapestActiveByProductIDs(ctx context.Context, productIDs []uint) (map[uint]*catalog.Price, error) {
	if len(productIDs) == 0 {
		return map[uint]*catalog.Price{}, nil
	}

	var modelList []*models.PriceModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("product_id IN ? AND active = ?", productIDs, true).
		Order("amount ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to load prices for products: %w", err)
	}

	cheapest := make(map[uint]*catalog.Price, len(productIDs))
	for _, model := range modelList {
		if _, seen := cheapest[model.ProductID]; seen {
			continue
		}
		price, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		cheapest[model.ProductID] = price
	}
	return cheapest, nil
}

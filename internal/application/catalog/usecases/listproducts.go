package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// ProductWithPrices pairs a product with its prices for catalog listings.
type ProductWithPrices struct {
	Product *catalog.Product
	Prices  []*catalog.Price
}

// ListProductsUseCase returns a merchant's catalog, each product with its
// prices attached.
type ListProductsUseCase struct {
	productRepo catalog.ProductRepository
	priceRepo   catalog.PriceRepository
	logger      logger.Interface
}

// NewListProductsUseCase creates the use case.
func NewListProductsUseCase(productRepo catalog.ProductRepository, priceRepo catalog.PriceRepository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo, priceRepo: priceRepo, logger: logger}
}

// Execute lists the merchant's products. When activeOnly is set, inactive
// products and prices are filtered out.
func (uc *ListProductsUseCase) Execute(ctx context.Context, merchantID uint, activeOnly bool) ([]ProductWithPrices, error) {
	products, err := uc.productRepo.ListByMerchant(ctx, merchantID, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list products", "merchant_id", merchantID, "error", err)
		return nil, errors.NewInternalError("failed to list products")
	}

	result := make([]ProductWithPrices, 0, len(products))
	for _, product := range products {
		prices, err := uc.priceRepo.ListByProduct(ctx, product.ID(), activeOnly)
		if err != nil {
			uc.logger.Errorw("failed to list prices", "product_id", product.ID(), "error", err)
			return nil, errors.NewInternalError("failed to list prices")
		}
		result = append(result, ProductWithPrices{Product: product, Prices: prices})
	}
	return result, nil
}

package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// CreateProductInput describes a new product.
type CreateProductInput struct {
	MerchantID  uint
	Name        string
	Description string
}

// CreateProductUseCase adds a product to the merchant's catalog.
type CreateProductUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

// NewCreateProductUseCase creates the use case.
func NewCreateProductUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo, logger: logger}
}

// Execute creates the product.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*catalog.Product, error) {
	product, err := catalog.NewProduct(input.MerchantID, input.Name, input.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		uc.logger.Errorw("failed to create product", "error", err)
		return nil, errors.NewInternalError("failed to create product")
	}
	return product, nil
}

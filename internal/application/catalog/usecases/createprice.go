package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// CreatePriceInput describes a new price for an existing product.
type CreatePriceInput struct {
	MerchantID uint
	ProductSID string
	Amount     int64
	Currency   string
	Interval   string
}

// CreatePriceUseCase attaches a billing price to a product.
type CreatePriceUseCase struct {
	productRepo catalog.ProductRepository
	priceRepo   catalog.PriceRepository
	logger      logger.Interface
}

// NewCreatePriceUseCase creates the use case.
func NewCreatePriceUseCase(productRepo catalog.ProductRepository, priceRepo catalog.PriceRepository, logger logger.Interface) *CreatePriceUseCase {
	return &CreatePriceUseCase{productRepo: productRepo, priceRepo: priceRepo, logger: logger}
}

// Execute creates the price after an ownership check.
func (uc *CreatePriceUseCase) Execute(ctx context.Context, input CreatePriceInput) (*catalog.Price, error) {
	product, err := uc.productRepo.GetBySID(ctx, input.ProductSID)
	if err != nil {
		uc.logger.Errorw("failed to load product", "product_sid", input.ProductSID, "error", err)
		return nil, errors.NewInternalError("failed to load product")
	}
	if product == nil {
		return nil, errors.NewNotFoundError("product not found")
	}
	if product.MerchantID() != input.MerchantID {
		return nil, errors.NewForbiddenError("product belongs to another merchant")
	}

	price, err := catalog.NewPrice(product.ID(), input.Amount, input.Currency, catalog.BillingInterval(input.Interval))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.priceRepo.Create(ctx, price); err != nil {
		uc.logger.Errorw("failed to create price", "error", err)
		return nil, errors.NewInternalError("failed to create price")
	}
	return price, nil
}

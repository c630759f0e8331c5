package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/payment"
	vo "github.com/lipagate/lipagate/internal/domain/payment/valueobjects"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// CheckoutInput is a customer's claim that they will pay for a price.
type CheckoutInput struct {
	PriceSID      string
	CustomerPhone string
	Channel       string
}

// CheckoutOutput hands the customer the reference code to quote in their
// transfer narration.
type CheckoutOutput struct {
	PaymentSID string `json:"payment_id"`
	Reference  string `json:"reference"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

// InitiateCheckoutUseCase creates a pending payment claim. No money moves
// here; the customer pays off-platform and the merchant confirms later.
type InitiateCheckoutUseCase struct {
	paymentRepo payment.Repository
	priceRepo   catalog.PriceRepository
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

// NewInitiateCheckoutUseCase creates the checkout use case.
func NewInitiateCheckoutUseCase(
	paymentRepo payment.Repository,
	priceRepo catalog.PriceRepository,
	productRepo catalog.ProductRepository,
	logger logger.Interface,
) *InitiateCheckoutUseCase {
	return &InitiateCheckoutUseCase{
		paymentRepo: paymentRepo,
		priceRepo:   priceRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute creates the pending payment.
func (uc *InitiateCheckoutUseCase) Execute(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error) {
	price, err := uc.priceRepo.GetBySID(ctx, input.PriceSID)
	if err != nil {
		uc.logger.Errorw("failed to load price for checkout", "price_sid", input.PriceSID, "error", err)
		return nil, errors.NewInternalError("failed to load price")
	}
	if price == nil || !price.IsActive() {
		return nil, errors.NewNotFoundError("price not found")
	}

	product, err := uc.productRepo.GetByID(ctx, price.ProductID())
	if err != nil {
		uc.logger.Errorw("failed to load product for checkout", "product_id", price.ProductID(), "error", err)
		return nil, errors.NewInternalError("failed to load product")
	}
	if product == nil || !product.IsActive() {
		return nil, errors.NewNotFoundError("product not found")
	}

	pay, err := payment.NewPayment(
		product.MerchantID(),
		input.CustomerPhone,
		product.ID(),
		price.ID(),
		price.Amount(),
		price.Currency(),
		vo.PaymentChannel(input.Channel),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.paymentRepo.Create(ctx, pay); err != nil {
		uc.logger.Errorw("failed to create payment", "error", err)
		return nil, errors.NewInternalError("failed to create payment")
	}

	uc.logger.Infow("checkout initiated",
		"payment_sid", pay.SID(),
		"reference", pay.Reference(),
		"customer_phone", pay.CustomerPhone(),
	)
	return &CheckoutOutput{
		PaymentSID: pay.SID(),
		Reference:  pay.Reference(),
		Amount:     pay.Amount(),
		Currency:   pay.Currency(),
	}, nil
}

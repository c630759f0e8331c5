package usecases

import (
	"context"
	"time"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/payment"
	"github.com/lipagate/lipagate/internal/domain/subscription"
	subvo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// ConfirmPaymentInput identifies the payment and who confirms it.
type ConfirmPaymentInput struct {
	PaymentSID  string
	ConfirmedBy uint
	IsAdmin     bool
}

// ConfirmPaymentOutput reports the subscription the confirmation produced.
type ConfirmPaymentOutput struct {
	PaymentSID      string    `json:"payment_id"`
	SubscriptionSID string    `json:"subscription_id"`
	Renewed         bool      `json:"renewed"`
	PeriodEnd       time.Time `json:"period_end"`
}

// ConfirmPaymentUseCase finalizes a manually verified payment. Confirmation
// is the sole trigger for subscription creation and renewal: an existing
// subscription for the phone/product pair gets a fresh period, otherwise a
// new one is created.
type ConfirmPaymentUseCase struct {
	paymentRepo payment.Repository
	subRepo     subscription.Repository
	priceRepo   catalog.PriceRepository
	productRepo catalog.ProductRepository
	notifier    ReceiptNotifier
	logger      logger.Interface
}

// NewConfirmPaymentUseCase creates the confirmation use case.
func NewConfirmPaymentUseCase(
	paymentRepo payment.Repository,
	subRepo subscription.Repository,
	priceRepo catalog.PriceRepository,
	productRepo catalog.ProductRepository,
	notifier ReceiptNotifier,
	logger logger.Interface,
) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		priceRepo:   priceRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute confirms the payment and grants the entitlement.
func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, input ConfirmPaymentInput) (*ConfirmPaymentOutput, error) {
	pay, err := uc.paymentRepo.GetBySID(ctx, input.PaymentSID)
	if err != nil {
		uc.logger.Errorw("failed to load payment", "payment_sid", input.PaymentSID, "error", err)
		return nil, errors.NewInternalError("failed to load payment")
	}
	if pay == nil {
		return nil, errors.NewNotFoundError("payment not found")
	}
	if !input.IsAdmin && pay.MerchantID() != input.ConfirmedBy {
		return nil, errors.NewForbiddenError("payment belongs to another merchant")
	}

	if err := pay.Confirm(input.ConfirmedBy); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.paymentRepo.Update(ctx, pay); err != nil {
		uc.logger.Errorw("failed to update payment", "payment_sid", pay.SID(), "error", err)
		return nil, errors.NewInternalError("failed to update payment")
	}

	price, err := uc.priceRepo.GetByID(ctx, pay.PriceID())
	if err != nil || price == nil {
		uc.logger.Errorw("failed to load price for confirmed payment", "price_id", pay.PriceID(), "error", err)
		return nil, errors.NewInternalError("failed to load price")
	}

	now := time.Now().UTC()
	sub, err := uc.subRepo.GetByPhoneAndProduct(ctx, pay.CustomerPhone(), pay.ProductID())
	if err != nil {
		uc.logger.Errorw("failed to look up existing subscription", "error", err)
		return nil, errors.NewInternalError("failed to look up subscription")
	}

	renewed := false
	if sub != nil && sub.Status() != subvo.StatusCancelled {
		// Extend from the current period end when it is still in the
		// future, otherwise start fresh from now.
		start := now
		if sub.CurrentPeriodEnd().After(now) && sub.Status().Entitles() {
			start = sub.CurrentPeriodEnd()
		}
		if err := sub.Renew(start, price.Interval().PeriodEnd(start)); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		if err := uc.subRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to renew subscription", "subscription_sid", sub.SID(), "error", err)
			return nil, errors.NewInternalError("failed to renew subscription")
		}
		renewed = true
	} else {
		sub, err = subscription.NewSubscription(
			pay.MerchantID(), pay.CustomerPhone(), pay.ProductID(),
			now, price.Interval().PeriodEnd(now),
		)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.subRepo.Create(ctx, sub); err != nil {
			uc.logger.Errorw("failed to create subscription", "error", err)
			return nil, errors.NewInternalError("failed to create subscription")
		}
	}

	uc.sendReceipt(ctx, pay, sub)

	uc.logger.Infow("payment confirmed",
		"payment_sid", pay.SID(),
		"subscription_sid", sub.SID(),
		"renewed", renewed,
	)
	return &ConfirmPaymentOutput{
		PaymentSID:      pay.SID(),
		SubscriptionSID: sub.SID(),
		Renewed:         renewed,
		PeriodEnd:       sub.CurrentPeriodEnd(),
	}, nil
}

// sendReceipt is best effort; channel failures only get logged.
func (uc *ConfirmPaymentUseCase) sendReceipt(ctx context.Context, pay *payment.Payment, sub *subscription.Subscription) {
	receipt := Receipt{
		CustomerPhone: pay.CustomerPhone(),
		Amount:        pay.Amount(),
		Currency:      pay.Currency(),
		Reference:     pay.Reference(),
		PeriodEnd:     sub.CurrentPeriodEnd(),
	}
	if product, err := uc.productRepo.GetByID(ctx, pay.ProductID()); err == nil && product != nil {
		receipt.ProductName = product.Name()
	}
	for _, err := range uc.notifier.SendPaymentReceipt(ctx, receipt) {
		uc.logger.Warnw("receipt channel failed", "payment_sid", pay.SID(), "error", err)
	}
}

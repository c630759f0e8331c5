package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/subscription"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// ListSubscriptionsUseCase pages through a merchant's customer subscriptions.
type ListSubscriptionsUseCase struct {
	subRepo subscription.Repository
	logger  logger.Interface
}

// NewListSubscriptionsUseCase creates the use case.
func NewListSubscriptionsUseCase(subRepo subscription.Repository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{subRepo: subRepo, logger: logger}
}

// Execute lists the merchant's subscriptions.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, merchantID uint, page, pageSize int) ([]*subscription.Subscription, int64, error) {
	subs, total, err := uc.subRepo.ListByMerchant(ctx, merchantID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "merchant_id", merchantID, "error", err)
		return nil, 0, errors.NewInternalError("failed to list subscriptions")
	}
	return subs, total, nil
}

package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/payment"
	vo "github.com/lipagate/lipagate/internal/domain/payment/valueobjects"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// ListPaymentsUseCase pages through a merchant's payment claims, the queue
// they work when matching bank and mobile money statements.
type ListPaymentsUseCase struct {
	paymentRepo payment.Repository
	logger      logger.Interface
}

// NewListPaymentsUseCase creates the use case.
func NewListPaymentsUseCase(paymentRepo payment.Repository, logger logger.Interface) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{paymentRepo: paymentRepo, logger: logger}
}

// Execute lists the merchant's payments, optionally filtered by status.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, merchantID uint, status string, page, pageSize int) ([]*payment.Payment, int64, error) {
	if status != "" && !vo.ValidStatuses[vo.PaymentStatus(status)] {
		return nil, 0, errors.NewValidationError("invalid payment status filter")
	}

	payments, total, err := uc.paymentRepo.ListByMerchant(ctx, merchantID, status, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "merchant_id", merchantID, "error", err)
		return nil, 0, errors.NewInternalError("failed to list payments")
	}
	return payments, total, nil
}

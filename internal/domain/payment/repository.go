package payment

import "context"

// Repository defines persistence operations for payments.
type Repository interface {
	Create(ctx context.Context, pay *Payment) error
	Update(ctx context.Context, pay *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetBySID(ctx context.Context, sid string) (*Payment, error)
	GetByReference(ctx context.Context, reference string) (*Payment, error)
	ListByMerchant(ctx context.Context, merchantID uint, status string, page, pageSize int) ([]*Payment, int64, error)
}

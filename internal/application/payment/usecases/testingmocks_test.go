package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/payment"
	"github.com/lipagate/lipagate/internal/domain/subscription"
)

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, pay *payment.Payment) error {
	return m.Called(ctx, pay).Error(0)
}

func (m *mockPaymentRepo) Update(ctx context.Context, pay *payment.Payment) error {
	return m.Called(ctx, pay).Error(0)
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *mockPaymentRepo) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *mockPaymentRepo) GetByReference(ctx context.Context, reference string) (*payment.Payment, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *mockPaymentRepo) ListByMerchant(ctx context.Context, merchantID uint, status string, page, pageSize int) ([]*payment.Payment, int64, error) {
	args := m.Called(ctx, merchantID, status, page, pageSize)
	pays, _ := args.Get(0).([]*payment.Payment)
	return pays, args.Get(1).(int64), args.Error(2)
}

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) ListByMerchant(ctx context.Context, merchantID uint, page, pageSize int) ([]*subscription.Subscription, int64, error) {
	args := m.Called(ctx, merchantID, page, pageSize)
	subs, _ := args.Get(0).([]*subscription.Subscription)
	return subs, args.Get(1).(int64), args.Error(2)
}

func (m *mockSubscriptionRepo) ExistsEntitling(ctx context.Context, customerPhone string, productIDs []uint, now time.Time) (bool, error) {
	args := m.Called(ctx, customerPhone, productIDs, now)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepo) GetByPhoneAndProduct(ctx context.Context, customerPhone string, productID uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, customerPhone, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) FindLapsed(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, now)
	subs, _ := args.Get(0).([]*subscription.Subscription)
	return subs, args.Error(1)
}

func (m *mockSubscriptionRepo) FindExpiringWithin(ctx context.Context, now time.Time, window time.Duration) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, now, window)
	subs, _ := args.Get(0).([]*subscription.Subscription)
	return subs, args.Error(1)
}

func (m *mockSubscriptionRepo) FindRecentlyExpired(ctx context.Context, now time.Time, lookback time.Duration) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, now, lookback)
	subs, _ := args.Get(0).([]*subscription.Subscription)
	return subs, args.Error(1)
}

type mockPriceRepo struct {
	mock.Mock
}

func (m *mockPriceRepo) Create(ctx context.Context, price *catalog.Price) error {
	return m.Called(ctx, price).Error(0)
}

func (m *mockPriceRepo) Update(ctx context.Context, price *catalog.Price) error {
	return m.Called(ctx, price).Error(0)
}

func (m *mockPriceRepo) GetByID(ctx context.Context, id uint) (*catalog.Price, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Price), args.Error(1)
}

func (m *mockPriceRepo) GetBySID(ctx context.Context, sid string) (*catalog.Price, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Price), args.Error(1)
}

func (m *mockPriceRepo) ListByProduct(ctx context.Context, productID uint, activeOnly bool) ([]*catalog.Price, error) {
	args := m.Called(ctx, productID, activeOnly)
	prices, _ := args.Get(0).([]*catalog.Price)
	return prices, args.Error(1)
}

func (m *mockPriceRepo) CheapestActiveByProductIDs(ctx context.Context, productIDs []uint) (map[uint]*catalog.Price, error) {
	args := m.Called(ctx, productIDs)
	prices, _ := args.Get(0).(map[uint]*catalog.Price)
	return prices, args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) GetBySID(ctx context.Context, sid string) (*catalog.Product, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]*catalog.Product)
	return products, args.Error(1)
}

func (m *mockProductRepo) ListByMerchant(ctx context.Context, merchantID uint, activeOnly bool) ([]*catalog.Product, error) {
	args := m.Called(ctx, merchantID, activeOnly)
	products, _ := args.Get(0).([]*catalog.Product)
	return products, args.Error(1)
}

func (m *mockProductRepo) ListIDsByMerchant(ctx context.Context, merchantID uint) ([]uint, error) {
	args := m.Called(ctx, merchantID)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

type mockReceiptNotifier struct {
	mock.Mock
}

func (m *mockReceiptNotifier) SendPaymentReceipt(ctx context.Context, receipt Receipt) []error {
	args := m.Called(ctx, receipt)
	errs, _ := args.Get(0).([]error)
	return errs
}

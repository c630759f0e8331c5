package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/domain/platform"
	"github.com/lipagate/lipagate/internal/domain/subscription"
)

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

type mockPlatformSubRepo struct {
	mock.Mock
}

func (m *mockPlatformSubRepo) Create(ctx context.Context, sub *platform.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockPlatformSubRepo) Update(ctx context.Context, sub *platform.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockPlatformSubRepo) GetByMerchantID(ctx context.Context, merchantID uint) (*platform.Subscription, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Subscription), args.Error(1)
}

func (m *mockPlatformSubRepo) FindExpiredTrials(ctx context.Context, now time.Time) ([]*platform.Subscription, error) {
	args := m.Called(ctx, now)
	subs, _ := args.Get(0).([]*platform.Subscription)
	return subs, args.Error(1)
}

type mockPlanRepo struct {
	mock.Mock
}

func (m *mockPlanRepo) Create(ctx context.Context, plan *platform.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockPlanRepo) GetByID(ctx context.Context, id uint) (*platform.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Plan), args.Error(1)
}

func (m *mockPlanRepo) GetByCode(ctx context.Context, code string) (*platform.Plan, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Plan), args.Error(1)
}

func (m *mockPlanRepo) List(ctx context.Context) ([]*platform.Plan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]*platform.Plan)
	return plans, args.Error(1)
}

type mockMerchantRepo struct {
	mock.Mock
}

func (m *mockMerchantRepo) Create(ctx context.Context, mr *merchant.Merchant) error {
	return m.Called(ctx, mr).Error(0)
}

func (m *mockMerchantRepo) GetByID(ctx context.Context, id uint) (*merchant.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchant.Merchant), args.Error(1)
}

func (m *mockMerchantRepo) GetByEmail(ctx context.Context, email string) (*merchant.Merchant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchant.Merchant), args.Error(1)
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

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendRenewalReminder(ctx context.Context, notice LifecycleNotice) []error {
	args := m.Called(ctx, notice)
	errs, _ := args.Get(0).([]error)
	return errs
}

func (m *mockNotifier) SendExpirationNotice(ctx context.Context, notice LifecycleNotice) []error {
	args := m.Called(ctx, notice)
	errs, _ := args.Get(0).([]error)
	return errs
}

func (m *mockNotifier) SendTrialEnded(ctx context.Context, notice TrialNotice) []error {
	args := m.Called(ctx, notice)
	errs, _ := args.Get(0).([]error)
	return errs
}

// mockSweepLocker records TryLock calls and the releases that follow.
type mockSweepLocker struct {
	mock.Mock
	released int
}

func (m *mockSweepLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	args := m.Called(ctx, key, ttl)
	return func() { m.released++ }, args.Bool(0), args.Error(1)
}

package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/domain/platform"
	"github.com/lipagate/lipagate/internal/domain/subscription"
	subvo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
	"github.com/lipagate/lipagate/internal/shared/constants"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

type sweepFixture struct {
	subRepo      *mockSubscriptionRepo
	platformRepo *mockPlatformSubRepo
	planRepo     *mockPlanRepo
	merchantRepo *mockMerchantRepo
	productRepo  *mockProductRepo
	notifier     *mockNotifier
	uc           *SweepSubscriptionsUseCase
}

func newSweepFixture(t *testing.T, locker SweepLocker) *sweepFixture {
	t.Helper()
	f := &sweepFixture{
		subRepo:      new(mockSubscriptionRepo),
		platformRepo: new(mockPlatformSubRepo),
		planRepo:     new(mockPlanRepo),
		merchantRepo: new(mockMerchantRepo),
		productRepo:  new(mockProductRepo),
		notifier:     new(mockNotifier),
	}
	f.uc = NewSweepSubscriptionsUseCase(
		f.subRepo, f.platformRepo, f.planRepo, f.merchantRepo, f.productRepo,
		f.notifier, locker, logger.NewLogger(),
	)
	return f
}

// expectQuietPhases stubs the sweep phases a test does not care about.
func (f *sweepFixture) expectQuietPhases(lapsed, expiring, recentlyExpired []*subscription.Subscription) {
	f.subRepo.On("FindLapsed", mock.Anything, mock.AnythingOfType("time.Time")).Return(lapsed, nil)
	f.subRepo.On("FindExpiringWithin", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Duration")).Return(expiring, nil)
	f.subRepo.On("FindRecentlyExpired", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Duration")).Return(recentlyExpired, nil)
}

func (f *sweepFixture) expectNoticeLookups(t *testing.T) {
	t.Helper()
	f.merchantRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uint")).Return(testMerchant(t), nil)
	f.productRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uint")).Return(nil, nil)
}

func testMerchant(t *testing.T) *merchant.Merchant {
	t.Helper()
	now := time.Now().UTC()
	m, err := merchant.ReconstructMerchant(3, "mch_test000003", "amina@example.com", "+211900000099", "x", "Amina K", false, now, now)
	require.NoError(t, err)
	return m
}

func reconstructSub(t *testing.T, p subscription.ReconstructParams) *subscription.Subscription {
	t.Helper()
	if p.ID == 0 {
		p.ID = 1
	}
	if p.SID == "" {
		p.SID = "sub_test0001"
	}
	if p.MerchantID == 0 {
		p.MerchantID = 3
	}
	if p.CustomerPhone == "" {
		p.CustomerPhone = "+211900000001"
	}
	if p.ProductID == 0 {
		p.ProductID = 10
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = p.CurrentPeriodStart
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CurrentPeriodStart
	}
	sub, err := subscription.Reconstruct(p)
	require.NoError(t, err)
	return sub
}

func freePlan(t *testing.T) *platform.Plan {
	t.Helper()
	now := time.Now().UTC()
	p, err := platform.ReconstructPlan(1, "pln_test000001", platform.PlanCodeFree, "Free", platform.Features{}, 0, 0, "SSP", now, now)
	require.NoError(t, err)
	return p
}

func TestSweepSubscriptions_LapsedYesterdayGoesPastDue(t *testing.T) {
	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	sub := reconstructSub(t, subscription.ReconstructParams{
		Status:             subvo.StatusActive,
		CurrentPeriodStart: now.AddDate(0, -1, 0),
		CurrentPeriodEnd:   now.Add(-24 * time.Hour),
	})

	f := newSweepFixture(t, nil)
	f.expectQuietPhases([]*subscription.Subscription{sub}, nil, nil)
	f.subRepo.On("Update", mock.Anything, sub).Return(nil)

	result, err := f.uc.Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.MarkedPastDue)
	assert.Equal(t, 0, result.MarkedExpired)
	assert.Empty(t, result.Errors)
	assert.Equal(t, subvo.StatusPastDue, sub.Status())
}

func TestSweepSubscriptions_GraceExhaustedGoesExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	periodEnd := now.Add(-time.Duration(constants.SubscriptionGraceDays+3) * 24 * time.Hour)
	sub := reconstructSub(t, subscription.ReconstructParams{
		Status:             subvo.StatusPastDue,
		CurrentPeriodStart: periodEnd.AddDate(0, -1, 0),
		CurrentPeriodEnd:   periodEnd,
	})

	f := newSweepFixture(t, nil)
	f.expectQuietPhases([]*subscription.Subscription{sub}, nil, nil)
	f.subRepo.On("Update", mock.Anything, sub).Return(nil)
	// Merchant's own platform subscription is still current, no cascade.
	platformEnd := now.AddDate(0, 1, 0)
	psub, perr := platform.ReconstructSubscription(platform.ReconstructSubscriptionParams{
		ID: 5, SID: "psb_test000005", MerchantID: 3, PlanID: 2,
		Status:             subvo.StatusActive,
		CurrentPeriodStart: now.AddDate(0, -1, 0),
		CurrentPeriodEnd:   platformEnd,
		CreatedAt:          now, UpdatedAt: now,
	})
	require.NoError(t, perr)
	f.platformRepo.On("GetByMerchantID", mock.Anything, uint(3)).Return(psub, nil)

	result, err := f.uc.Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.MarkedExpired)
	assert.Equal(t, 0, result.MarkedPastDue)
	assert.Equal(t, subvo.StatusExpired, sub.Status())
	require.NotNil(t, sub.ExpiredAt())
	f.platformRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSweepSubscriptions_ExpiryCascadesPlatformFallback(t *testing.T) {
	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	periodEnd := now.Add(-time.Duration(constants.SubscriptionGraceDays+1) * 24 * time.Hour)
	sub := reconstructSub(t, subscription.ReconstructParams{
		Status:             subvo.StatusPastDue,
		CurrentPeriodStart: periodEnd.AddDate(0, -1, 0),
		CurrentPeriodEnd:   periodEnd,
	})

	psub, perr := platform.ReconstructSubscription(platform.ReconstructSubscriptionParams{
		ID: 5, SID: "psb_test000005", MerchantID: 3, PlanID: 2,
		Status:             subvo.StatusActive,
		CurrentPeriodStart: now.AddDate(0, -2, 0),
		CurrentPeriodEnd:   now.AddDate(0, -1, 0),
		CreatedAt:          now, UpdatedAt: now,
	})
	require.NoError(t, perr)

	f := newSweepFixture(t, nil)
	f.expectQuietPhases([]*subscription.Subscription{sub}, nil, nil)
	f.subRepo.On("Update", mock.Anything, sub).Return(nil)
	f.platformRepo.On("GetByMerchantID", mock.Anything, uint(3)).Return(psub, nil)
	f.planRepo.On("GetByCode", mock.Anything, platform.PlanCodeFree).Return(freePlan(t), nil)
	f.platformRepo.On("Update", mock.Anything, psub).Return(nil)

	result, err := f.uc.Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.MarkedExpired)
	assert.Empty(t, result.Errors)
	assert.Equal(t, uint(1), psub.PlanID())
	assert.Equal(t, subvo.StatusActive, psub.Status())
	f.platformRepo.AssertExpectations(t)
}

func TestSweepSubscriptions_ReminderSentOncePerPeriod(t *testing.T) {
	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	start := now.AddDate(0, -1, 0)
	fresh := reconstructSub(t, subscription.ReconstructParams{
		ID: 1, SID: "sub_fresh00001",
		Status:             subvo.StatusActive,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   now.Add(48 * time.Hour),
	})
	notified := now.Add(-24 * time.Hour)
	alreadyNotified := reconstructSub(t, subscription.ReconstructParams{
		ID: 2, SID: "sub_stale00002",
		Status:             subvo.StatusActive,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   now.Add(48 * time.Hour),
		NotifiedExpiringAt: &notified,
	})

	f := newSweepFixture(t, nil)
	f.expectQuietPhases(nil, []*subscription.Subscription{fresh, alreadyNotified}, nil)
	f.expectNoticeLookups(t)
	f.notifier.On("SendRenewalReminder", mock.Anything, mock.AnythingOfType("usecases.LifecycleNotice")).Return(nil).Once()
	f.subRepo.On("Update", mock.Anything, fresh).Return(nil)

	result, err := f.uc.Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, []string{"sub_fresh00001"}, result.ExpiringSoonNotified)
	f.notifier.AssertExpectations(t)
	f.notifier.AssertNumberOfCalls(t, "SendRenewalReminder", 1)
}

func TestSweepSubscriptions_ReminderNoticeCarriesMerchantContact(t *testing.T) {
	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	sub := reconstructSub(t, subscription.ReconstructParams{
		Status:             subvo.StatusActive,
		CurrentPeriodStart: now.AddDate(0, -1, 0),
		CurrentPeriodEnd:   now.Add(48 * time.Hour),
	})

	f := newSweepFixture(t, nil)
	f.expectQuietPhases(nil, []*subscription.Subscription{sub}, nil)
	f.merchantRepo.On("GetByID", mock.Anything, uint(3)).Return(testMerchant(t), nil)
	prod, err := catalog.ReconstructProduct(10, "prd_test000010", 3, "Premium plan", "", true, now, now)
	require.NoError(t, err)
	f.productRepo.On("GetByID", mock.Anything, uint(10)).Return(prod, nil)

	var got LifecycleNotice
	f.notifier.On("SendRenewalReminder", mock.Anything, mock.AnythingOfType("usecases.LifecycleNotice")).
		Run(func(args mock.Arguments) { got = args.Get(1).(LifecycleNotice) }).
		Return(nil)
	f.subRepo.On("Update", mock.Anything, sub).Return(nil)

	_, err = f.uc.Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, "+211900000001", got.CustomerPhone)
	assert.Equal(t, "amina@example.com", got.MerchantEmail)
	assert.Equal(t, "Amina K", got.MerchantName)
	assert.Equal(t, "Premium plan", got.ProductName)
}

func TestSweepSubscriptions_ExpiredNoticeStampsWatermark(t *testing.T) {
	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	expiredAt := now.Add(-2 * time.Hour)
	periodEnd := now.Add(-time.Duration(constants.SubscriptionGraceDays) * 24 * time.Hour)
	sub := reconstructSub(t, subscription.ReconstructParams{
		Status:             subvo.StatusExpired,
		CurrentPeriodStart: periodEnd.AddDate(0, -1, 0),
		CurrentPeriodEnd:   periodEnd,
		ExpiredAt:          &expiredAt,
	})

	f := newSweepFixture(t, nil)
	f.expectQuietPhases(nil, nil, []*subscription.Subscription{sub})
	f.expectNoticeLookups(t)
	f.notifier.On("SendExpirationNotice", mock.Anything, mock.AnythingOfType("usecases.LifecycleNotice")).Return(nil)
	f.subRepo.On("Update", mock.Anything, sub).Return(nil)

	result, err := f.uc.Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, []string{"sub_test0001"}, result.ExpiredNotified)
	assert.False(t, sub.NeedsExpiredNotice(now, 24*time.Hour))

	// A second sweep over the same rows sends nothing new.
	f2 := newSweepFixture(t, nil)
	f2.expectQuietPhases(nil, nil, []*subscription.Subscription{sub})

	result2, err := f2.uc.Execute(context.Background(), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, result2.ExpiredNotified)
	f2.notifier.AssertNotCalled(t, "SendExpirationNotice", mock.Anything, mock.Anything)
}

func TestSweepSubscriptions_ChannelFailureStillStampsWatermark(t *testing.T) {
	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	sub := reconstructSub(t, subscription.ReconstructParams{
		Status:             subvo.StatusActive,
		CurrentPeriodStart: now.AddDate(0, -1, 0),
		CurrentPeriodEnd:   now.Add(48 * time.Hour),
	})

	f := newSweepFixture(t, nil)
	f.expectQuietPhases(nil, []*subscription.Subscription{sub}, nil)
	f.expectNoticeLookups(t)
	f.notifier.On("SendRenewalReminder", mock.Anything, mock.AnythingOfType("usecases.LifecycleNotice")).
		Return([]error{errors.New("smtp timeout")})
	f.subRepo.On("Update", mock.Anything, sub).Return(nil)

	result, err := f.uc.Execute(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "smtp timeout")
	assert.Equal(t, []string{"sub_test0001"}, result.ExpiringSoonNotified)
}

func TestSweepSubscriptions_LockHeldSkipsRun(t *testing.T) {
	locker := new(mockSweepLocker)
	locker.On("TryLock", mock.Anything, sweepLockKey, 5*time.Minute).Return(false, nil)

	f := newSweepFixture(t, locker)

	result, err := f.uc.Execute(context.Background(), time.Now())

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Zero(t, result.Processed)
	f.subRepo.AssertNotCalled(t, "FindLapsed", mock.Anything, mock.Anything)
}

func TestSweepSubscriptions_LockErrorProceedsAnyway(t *testing.T) {
	locker := new(mockSweepLocker)
	locker.On("TryLock", mock.Anything, sweepLockKey, 5*time.Minute).Return(false, errors.New("redis down"))

	f := newSweepFixture(t, locker)
	f.expectQuietPhases(nil, nil, nil)

	result, err := f.uc.Execute(context.Background(), time.Now())

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	f.subRepo.AssertExpectations(t)
}

func TestSweepSubscriptions_LockAcquiredIsReleased(t *testing.T) {
	locker := new(mockSweepLocker)
	locker.On("TryLock", mock.Anything, sweepLockKey, 10*time.Minute).Return(true, nil)

	f := newSweepFixture(t, locker)
	f.uc.SetLockTTL(10 * time.Minute)
	f.expectQuietPhases(nil, nil, nil)

	_, err := f.uc.Execute(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 1, locker.released)
}

func TestSweepSubscriptions_FindLapsedErrorIsReported(t *testing.T) {
	f := newSweepFixture(t, nil)
	f.subRepo.On("FindLapsed", mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, errors.New("db down"))
	f.subRepo.On("FindExpiringWithin", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Duration")).Return(nil, nil)
	f.subRepo.On("FindRecentlyExpired", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Duration")).Return(nil, nil)

	result, err := f.uc.Execute(context.Background(), time.Now())

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "find lapsed")
}

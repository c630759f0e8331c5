package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lipagate/lipagate/internal/domain/platform"
	subvo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

func trialingSub(t *testing.T, trialEnd time.Time) *platform.Subscription {
	t.Helper()
	psub, err := platform.ReconstructSubscription(platform.ReconstructSubscriptionParams{
		ID: 5, SID: "psb_test000005", MerchantID: 3, PlanID: 2,
		Status:             subvo.StatusTrialing,
		CurrentPeriodStart: trialEnd.AddDate(0, 0, -14),
		CurrentPeriodEnd:   trialEnd,
		TrialEndsAt:        &trialEnd,
		CreatedAt:          trialEnd.AddDate(0, 0, -14),
		UpdatedAt:          trialEnd.AddDate(0, 0, -14),
	})
	require.NoError(t, err)
	return psub
}

func paidPlan(t *testing.T) *platform.Plan {
	t.Helper()
	now := time.Now().UTC()
	p, err := platform.ReconstructPlan(2, "pln_test000002", "pro", "Pro", platform.Features{APIAccess: true}, 14, 20000, "SSP", now, now)
	require.NoError(t, err)
	return p
}

func newTrialsFixture(t *testing.T) (*CheckTrialsUseCase, *mockPlatformSubRepo, *mockPlanRepo, *mockMerchantRepo, *mockNotifier) {
	t.Helper()
	platformRepo := new(mockPlatformSubRepo)
	planRepo := new(mockPlanRepo)
	merchantRepo := new(mockMerchantRepo)
	notifier := new(mockNotifier)
	uc := NewCheckTrialsUseCase(platformRepo, planRepo, merchantRepo, notifier, logger.NewLogger())
	return uc, platformRepo, planRepo, merchantRepo, notifier
}

func TestCheckTrials_NothingExpired(t *testing.T) {
	uc, platformRepo, planRepo, _, notifier := newTrialsFixture(t)
	platformRepo.On("FindExpiredTrials", mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, nil)

	result, err := uc.Execute(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Zero(t, result.Processed)
	planRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendTrialEnded", mock.Anything, mock.Anything)
}

func TestCheckTrials_ExpiredTrialFallsBackAndNotifies(t *testing.T) {
	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	psub := trialingSub(t, now.Add(-time.Hour))

	uc, platformRepo, planRepo, merchantRepo, notifier := newTrialsFixture(t)
	platformRepo.On("FindExpiredTrials", mock.Anything, now).Return([]*platform.Subscription{psub}, nil)
	planRepo.On("GetByCode", mock.Anything, platform.PlanCodeFree).Return(freePlan(t), nil)
	planRepo.On("GetByID", mock.Anything, uint(2)).Return(paidPlan(t), nil)
	platformRepo.On("Update", mock.Anything, psub).Return(nil)
	merchantRepo.On("GetByID", mock.Anything, uint(3)).Return(testMerchant(t), nil)

	var got TrialNotice
	notifier.On("SendTrialEnded", mock.Anything, mock.AnythingOfType("usecases.TrialNotice")).
		Run(func(args mock.Arguments) { got = args.Get(1).(TrialNotice) }).
		Return(nil)

	result, err := uc.Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, []string{"psb_test000005"}, result.Ended)
	assert.Empty(t, result.Errors)
	assert.Equal(t, uint(1), psub.PlanID())
	assert.Equal(t, subvo.StatusActive, psub.Status())
	assert.Nil(t, psub.TrialEndsAt())
	assert.Equal(t, "Pro", got.PlanName)
	assert.Equal(t, "amina@example.com", got.MerchantEmail)
	assert.Equal(t, now, got.TrialEndedAt)
}

func TestCheckTrials_MissingFreePlanAborts(t *testing.T) {
	now := time.Now().UTC()
	uc, platformRepo, planRepo, _, _ := newTrialsFixture(t)
	platformRepo.On("FindExpiredTrials", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*platform.Subscription{trialingSub(t, now.Add(-time.Hour))}, nil)
	planRepo.On("GetByCode", mock.Anything, platform.PlanCodeFree).Return(nil, nil)

	_, err := uc.Execute(context.Background(), now)

	require.ErrorIs(t, err, platform.ErrNoFreePlan)
	platformRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCheckTrials_UpdateFailureReportedPerSubscription(t *testing.T) {
	now := time.Now().UTC()
	psub := trialingSub(t, now.Add(-time.Hour))

	uc, platformRepo, planRepo, _, notifier := newTrialsFixture(t)
	platformRepo.On("FindExpiredTrials", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*platform.Subscription{psub}, nil)
	planRepo.On("GetByCode", mock.Anything, platform.PlanCodeFree).Return(freePlan(t), nil)
	planRepo.On("GetByID", mock.Anything, uint(2)).Return(paidPlan(t), nil)
	platformRepo.On("Update", mock.Anything, psub).Return(errors.New("deadlock"))

	result, err := uc.Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Empty(t, result.Ended)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "deadlock")
	notifier.AssertNotCalled(t, "SendTrialEnded", mock.Anything, mock.Anything)
}

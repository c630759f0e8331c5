package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/domain/platform"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// TrialSweepResult summarizes one trial-check invocation.
type TrialSweepResult struct {
	Processed int      `json:"processed"`
	Ended     []string `json:"ended"`
	Errors    []string `json:"errors"`
}

// CheckTrialsUseCase moves platform subscriptions whose trial ran out onto
// the free plan and tells the merchant.
type CheckTrialsUseCase struct {
	platformRepo platform.SubscriptionRepository
	planRepo     platform.PlanRepository
	merchantRepo merchant.Repository
	notifier     Notifier
	logger       logger.Interface
}

// NewCheckTrialsUseCase creates the trial sweeper.
func NewCheckTrialsUseCase(
	platformRepo platform.SubscriptionRepository,
	planRepo platform.PlanRepository,
	merchantRepo merchant.Repository,
	notifier Notifier,
	logger logger.Interface,
) *CheckTrialsUseCase {
	return &CheckTrialsUseCase{
		platformRepo: platformRepo,
		planRepo:     planRepo,
		merchantRepo: merchantRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute runs one trial check at the given instant.
func (uc *CheckTrialsUseCase) Execute(ctx context.Context, now time.Time) (*TrialSweepResult, error) {
	result := &TrialSweepResult{Ended: []string{}, Errors: []string{}}
	now = now.UTC()

	expired, err := uc.platformRepo.FindExpiredTrials(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired trials: %w", err)
	}
	if len(expired) == 0 {
		return result, nil
	}

	freePlan, err := uc.planRepo.GetByCode(ctx, platform.PlanCodeFree)
	if err != nil {
		return nil, fmt.Errorf("failed to load free plan: %w", err)
	}
	if freePlan == nil {
		return nil, platform.ErrNoFreePlan
	}

	for _, psub := range expired {
		result.Processed++

		oldPlan, _ := uc.planRepo.GetByID(ctx, psub.PlanID())

		if err := psub.FallBackToFree(freePlan.ID(), now); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("fall back %s: %v", psub.SID(), err))
			continue
		}
		if err := uc.platformRepo.Update(ctx, psub); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("update %s: %v", psub.SID(), err))
			continue
		}
		result.Ended = append(result.Ended, psub.SID())

		notice := TrialNotice{TrialEndedAt: now}
		if oldPlan != nil {
			notice.PlanName = oldPlan.Name()
		}
		if m, err := uc.merchantRepo.GetByID(ctx, psub.MerchantID()); err != nil {
			uc.logger.Warnw("failed to load merchant for trial notice", "merchant_id", psub.MerchantID(), "error", err)
		} else if m != nil {
			notice.MerchantEmail = m.Email()
			notice.MerchantPhone = m.Phone()
			notice.MerchantName = m.DisplayName()
		}
		for _, err := range uc.notifier.SendTrialEnded(ctx, notice) {
			result.Errors = append(result.Errors, fmt.Sprintf("trial notice %s: %v", psub.SID(), err))
		}
	}

	uc.logger.Infow("trial sweep finished",
		"processed", result.Processed,
		"ended", len(result.Ended),
		"errors", len(result.Errors),
	)
	return result, nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/domain/platform"
	"github.com/lipagate/lipagate/internal/domain/subscription"
	"github.com/lipagate/lipagate/internal/shared/constants"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

const sweepLockKey = "lifecycle:sweep:subscriptions"

// SweepResult summarizes one sweeper invocation.
type SweepResult struct {
	Processed            int      `json:"processed"`
	MarkedPastDue        int      `json:"marked_past_due"`
	MarkedExpired        int      `json:"marked_expired"`
	ExpiringSoonNotified []string `json:"expiring_soon_notified"`
	ExpiredNotified      []string `json:"expired_notified"`
	Skipped              bool     `json:"skipped"`
	Errors               []string `json:"errors"`
}

// SweepSubscriptionsUseCase advances lapsed subscriptions through
// active -> past_due -> expired and fires lifecycle notifications.
//
// The sweep is idempotent: transitions are no-ops once applied, and the
// notified-at watermarks on each subscription keep reminders from repeating
// within a period. A distributed lock guards against overlapping runs.
type SweepSubscriptionsUseCase struct {
	subRepo      subscription.Repository
	platformRepo platform.SubscriptionRepository
	planRepo     platform.PlanRepository
	merchantRepo merchant.Repository
	productRepo  catalog.ProductRepository
	notifier     Notifier
	locker       SweepLocker
	lockTTL      time.Duration
	logger       logger.Interface
}

// SetLockTTL overrides how long the advisory lock is held. Values at or
// below zero fall back to the five minute default.
func (uc *SweepSubscriptionsUseCase) SetLockTTL(ttl time.Duration) {
	uc.lockTTL = ttl
}

// NewSweepSubscriptionsUseCase creates the subscription sweeper.
func NewSweepSubscriptionsUseCase(
	subRepo subscription.Repository,
	platformRepo platform.SubscriptionRepository,
	planRepo platform.PlanRepository,
	merchantRepo merchant.Repository,
	productRepo catalog.ProductRepository,
	notifier Notifier,
	locker SweepLocker,
	logger logger.Interface,
) *SweepSubscriptionsUseCase {
	return &SweepSubscriptionsUseCase{
		subRepo:      subRepo,
		platformRepo: platformRepo,
		planRepo:     planRepo,
		merchantRepo: merchantRepo,
		productRepo:  productRepo,
		notifier:     notifier,
		locker:       locker,
		logger:       logger,
	}
}

// Execute runs one sweep at the given instant.
func (uc *SweepSubscriptionsUseCase) Execute(ctx context.Context, now time.Time) (*SweepResult, error) {
	result := &SweepResult{
		ExpiringSoonNotified: []string{},
		ExpiredNotified:      []string{},
		Errors:               []string{},
	}

	if uc.locker != nil {
		ttl := uc.lockTTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		release, ok, err := uc.locker.TryLock(ctx, sweepLockKey, ttl)
		if err != nil {
			// Lock backend down: run anyway, duplicate notifications are
			// preferable to a stalled lifecycle.
			uc.logger.Warnw("sweep lock unavailable, proceeding without it", "error", err)
		} else if !ok {
			uc.logger.Infow("another sweep holds the lock, skipping this run")
			result.Skipped = true
			return result, nil
		} else {
			defer release()
		}
	}

	now = now.UTC()

	uc.transitionLapsed(ctx, now, result)
	uc.notifyExpiringSoon(ctx, now, result)
	uc.notifyRecentlyExpired(ctx, now, result)

	uc.logger.Infow("subscription sweep finished",
		"processed", result.Processed,
		"marked_past_due", result.MarkedPastDue,
		"marked_expired", result.MarkedExpired,
		"expiring_notified", len(result.ExpiringSoonNotified),
		"expired_notified", len(result.ExpiredNotified),
		"errors", len(result.Errors),
	)
	return result, nil
}

// transitionLapsed applies the state machine to every lapsed subscription.
func (uc *SweepSubscriptionsUseCase) transitionLapsed(ctx context.Context, now time.Time, result *SweepResult) {
	lapsed, err := uc.subRepo.FindLapsed(ctx, now)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("find lapsed subscriptions: %v", err))
		return
	}

	for _, sub := range lapsed {
		result.Processed++

		switch {
		case sub.ShouldMarkExpired(now):
			if err := sub.MarkExpired(now); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("mark expired %s: %v", sub.SID(), err))
				continue
			}
			if err := uc.subRepo.Update(ctx, sub); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("update expired %s: %v", sub.SID(), err))
				continue
			}
			result.MarkedExpired++
			uc.cascadePlatformFallback(ctx, sub.MerchantID(), now, result)

		case sub.ShouldMarkPastDue(now):
			if err := sub.MarkPastDue(); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("mark past_due %s: %v", sub.SID(), err))
				continue
			}
			if err := uc.subRepo.Update(ctx, sub); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("update past_due %s: %v", sub.SID(), err))
			} else {
				result.MarkedPastDue++
			}
		}
	}
}

// cascadePlatformFallback drops the owning merchant's platform subscription
// to the free tier when its own period has lapsed as well.
func (uc *SweepSubscriptionsUseCase) cascadePlatformFallback(ctx context.Context, merchantID uint, now time.Time, result *SweepResult) {
	psub, err := uc.platformRepo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("load platform subscription for merchant %d: %v", merchantID, err))
		return
	}
	if psub == nil || !psub.CurrentPeriodEnd().Before(now) {
		return
	}

	freePlan, err := uc.planRepo.GetByCode(ctx, platform.PlanCodeFree)
	if err != nil || freePlan == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("load free plan: %v", err))
		return
	}
	if psub.PlanID() == freePlan.ID() {
		return
	}

	if err := psub.FallBackToFree(freePlan.ID(), now); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("fall back merchant %d to free plan: %v", merchantID, err))
		return
	}
	if err := uc.platformRepo.Update(ctx, psub); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("update platform subscription for merchant %d: %v", merchantID, err))
		return
	}
	uc.logger.Infow("platform subscription fell back to free plan", "merchant_id", merchantID)
}

// notifyExpiringSoon sends renewal reminders for active subscriptions ending
// within the reminder window, at most once per period.
func (uc *SweepSubscriptionsUseCase) notifyExpiringSoon(ctx context.Context, now time.Time, result *SweepResult) {
	window := constants.ExpiryReminderDays * 24 * time.Hour
	expiring, err := uc.subRepo.FindExpiringWithin(ctx, now, window)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("find expiring subscriptions: %v", err))
		return
	}

	for _, sub := range expiring {
		if !sub.NeedsExpiryReminder(now, window) {
			continue
		}
		result.Processed++

		notice := uc.buildNotice(ctx, sub)
		for _, err := range uc.notifier.SendRenewalReminder(ctx, notice) {
			result.Errors = append(result.Errors, fmt.Sprintf("renewal reminder %s: %v", sub.SID(), err))
		}

		sub.MarkExpiryReminderSent(now)
		if err := uc.subRepo.Update(ctx, sub); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("stamp reminder watermark %s: %v", sub.SID(), err))
			continue
		}
		result.ExpiringSoonNotified = append(result.ExpiringSoonNotified, sub.SID())
	}
}

// notifyRecentlyExpired sends expiration notices for subscriptions that
// expired within the last day and have not been notified yet.
func (uc *SweepSubscriptionsUseCase) notifyRecentlyExpired(ctx context.Context, now time.Time, result *SweepResult) {
	const lookback = 24 * time.Hour
	expired, err := uc.subRepo.FindRecentlyExpired(ctx, now, lookback)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("find recently expired subscriptions: %v", err))
		return
	}

	for _, sub := range expired {
		if !sub.NeedsExpiredNotice(now, lookback) {
			continue
		}
		result.Processed++

		notice := uc.buildNotice(ctx, sub)
		for _, err := range uc.notifier.SendExpirationNotice(ctx, notice) {
			result.Errors = append(result.Errors, fmt.Sprintf("expiration notice %s: %v", sub.SID(), err))
		}

		sub.MarkExpiredNoticeSent(now)
		if err := uc.subRepo.Update(ctx, sub); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("stamp expired watermark %s: %v", sub.SID(), err))
			continue
		}
		result.ExpiredNotified = append(result.ExpiredNotified, sub.SID())
	}
}

// buildNotice gathers contact info and catalog details for the templates.
// Lookups are best effort: a missing merchant or product only thins out the
// notice, it never blocks the send.
func (uc *SweepSubscriptionsUseCase) buildNotice(ctx context.Context, sub *subscription.Subscription) LifecycleNotice {
	notice := LifecycleNotice{
		CustomerPhone:    sub.CustomerPhone(),
		CurrentPeriodEnd: sub.CurrentPeriodEnd(),
	}

	if m, err := uc.merchantRepo.GetByID(ctx, sub.MerchantID()); err != nil {
		uc.logger.Warnw("failed to load merchant for notice", "merchant_id", sub.MerchantID(), "error", err)
	} else if m != nil {
		notice.MerchantEmail = m.Email()
		notice.MerchantPhone = m.Phone()
		notice.MerchantName = m.DisplayName()
	}

	if p, err := uc.productRepo.GetByID(ctx, sub.ProductID()); err != nil {
		uc.logger.Warnw("failed to load product for notice", "product_id", sub.ProductID(), "error", err)
	} else if p != nil {
		notice.ProductName = p.Name()
	}

	return notice
}

package usecases

import (
	"context"
	"time"
)

// LifecycleNotice carries everything the notification templates need for a
// renewal reminder or expiration notice. Contact fields left empty simply
// skip that channel.
type LifecycleNotice struct {
	CustomerPhone    string
	MerchantEmail    string
	MerchantPhone    string
	MerchantName     string
	ProductName      string
	Amount           int64
	Currency         string
	CurrentPeriodEnd time.Time
}

// TrialNotice is sent to a merchant when their platform trial ends.
type TrialNotice struct {
	MerchantEmail string
	MerchantPhone string
	MerchantName  string
	PlanName      string
	TrialEndedAt  time.Time
}

// Notifier fans a notice out to every channel with contact info. Channel
// failures are isolated: each failed channel contributes one error, the rest
// still go out. Implementations never panic and never abort the caller.
type Notifier interface {
	SendRenewalReminder(ctx context.Context, notice LifecycleNotice) []error
	SendExpirationNotice(ctx context.Context, notice LifecycleNotice) []error
	SendTrialEnded(ctx context.Context, notice TrialNotice) []error
}

// SweepLocker serializes sweeps across processes so overlapping scheduler
// triggers do not double-send notifications.
type SweepLocker interface {
	// TryLock attempts to take the named lock for at most ttl. When ok is
	// false another sweep holds it and the caller should skip this run.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

package platform

import (
	"context"
	"time"
)

// PlanRepository defines persistence operations for platform plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByCode(ctx context.Context, code string) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
}

// SubscriptionRepository defines persistence operations for platform
// subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	GetByMerchantID(ctx context.Context, merchantID uint) (*Subscription, error)

	// FindExpiredTrials returns trialing subscriptions whose trial has run
	// out at the given instant.
	FindExpiredTrials(ctx context.Context, now time.Time) ([]*Subscription, error)
}

package subscription

import (
	"context"
	"time"
)

// Repository defines persistence operations for subscriptions.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetBySID(ctx context.Context, sid string) (*Subscription, error)
	ListByMerchant(ctx context.Context, merchantID uint, page, pageSize int) ([]*Subscription, int64, error)

	// ExistsEntitling reports whether the phone holds an active, unexpired
	// subscription to any of the given products. This is the entitlement
	// check behind every access decision.
	ExistsEntitling(ctx context.Context, customerPhone string, productIDs []uint, now time.Time) (bool, error)

	// GetByPhoneAndProduct returns the most recent subscription for the
	// phone/product pair, or nil when none exists.
	GetByPhoneAndProduct(ctx context.Context, customerPhone string, productID uint) (*Subscription, error)

	// FindLapsed returns subscriptions whose current period ended before now
	// and whose status still allows a lifecycle transition.
	FindLapsed(ctx context.Context, now time.Time) ([]*Subscription, error)

	// FindExpiringWithin returns active subscriptions whose period ends
	// inside (now, now+window].
	FindExpiringWithin(ctx context.Context, now time.Time, window time.Duration) ([]*Subscription, error)

	// FindRecentlyExpired returns subscriptions that expired inside
	// [now-lookback, now].
	FindRecentlyExpired(ctx context.Context, now time.Time, lookback time.Duration) ([]*Subscription, error)
}

package subscription

import (
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/shared/constants"
	"github.com/lipagate/lipagate/internal/shared/id"

	vo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
)

// GracePeriod is the fixed window after period end during which a lapsed
// subscription stays past_due before it is marked expired.
const GracePeriod = constants.SubscriptionGraceDays * 24 * time.Hour

// Subscription is the aggregate root for a customer's entitlement to one
// product. Customers have no accounts; the phone number is the identity key.
type Subscription struct {
	id                 uint
	sid                string
	merchantID         uint
	customerPhone      string
	productID          uint
	status             vo.SubscriptionStatus
	currentPeriodStart time.Time
	currentPeriodEnd   time.Time
	expiredAt          *time.Time
	cancelledAt        *time.Time
	cancelReason       *string
	notifiedExpiringAt *time.Time
	notifiedExpiredAt  *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSubscription creates an active subscription for a confirmed payment.
func NewSubscription(merchantID uint, customerPhone string, productID uint, periodStart, periodEnd time.Time) (*Subscription, error) {
	if merchantID == 0 {
		return nil, fmt.Errorf("merchant ID is required")
	}
	if customerPhone == "" {
		return nil, fmt.Errorf("customer phone is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if !periodEnd.After(periodStart) {
		return nil, fmt.Errorf("period end must be after period start")
	}

	now := time.Now().UTC()
	return &Subscription{
		sid:                id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		merchantID:         merchantID,
		customerPhone:      customerPhone,
		productID:          productID,
		status:             vo.StatusActive,
		currentPeriodStart: periodStart,
		currentPeriodEnd:   periodEnd,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID                 uint
	SID                string
	MerchantID         uint
	CustomerPhone      string
	ProductID          uint
	Status             vo.SubscriptionStatus
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	ExpiredAt          *time.Time
	CancelledAt        *time.Time
	CancelReason       *string
	NotifiedExpiringAt *time.Time
	NotifiedExpiredAt  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Reconstruct rebuilds a subscription from persistence.
func Reconstruct(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.CustomerPhone == "" {
		return nil, fmt.Errorf("customer phone is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}

	return &Subscription{
		id:                 p.ID,
		sid:                p.SID,
		merchantID:         p.MerchantID,
		customerPhone:      p.CustomerPhone,
		productID:          p.ProductID,
		status:             p.Status,
		currentPeriodStart: p.CurrentPeriodStart,
		currentPeriodEnd:   p.CurrentPeriodEnd,
		expiredAt:          p.ExpiredAt,
		cancelledAt:        p.CancelledAt,
		cancelReason:       p.CancelReason,
		notifiedExpiringAt: p.NotifiedExpiringAt,
		notifiedExpiredAt:  p.NotifiedExpiredAt,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) SID() string                   { return s.sid }
func (s *Subscription) MerchantID() uint              { return s.merchantID }
func (s *Subscription) CustomerPhone() string         { return s.customerPhone }
func (s *Subscription) ProductID() uint               { return s.productID }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) CurrentPeriodStart() time.Time { return s.currentPeriodStart }
func (s *Subscription) CurrentPeriodEnd() time.Time   { return s.currentPeriodEnd }
func (s *Subscription) ExpiredAt() *time.Time         { return s.expiredAt }
func (s *Subscription) CancelledAt() *time.Time       { return s.cancelledAt }
func (s *Subscription) CancelReason() *string         { return s.cancelReason }
func (s *Subscription) NotifiedExpiringAt() *time.Time { return s.notifiedExpiringAt }
func (s *Subscription) NotifiedExpiredAt() *time.Time  { return s.notifiedExpiredAt }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

// SetID assigns the database identity after insert.
func (s *Subscription) SetID(newID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = newID
	return nil
}

// IsEntitling reports whether this subscription grants access to gated
// content at the given instant: status must entitle and the period must not
// have lapsed.
func (s *Subscription) IsEntitling(now time.Time) bool {
	return s.status.Entitles() && !s.currentPeriodEnd.Before(now)
}

// GraceDeadline is the instant at which a lapsed subscription stops being
// past_due. The deadline itself already belongs to expired.
func (s *Subscription) GraceDeadline() time.Time {
	return s.currentPeriodEnd.Add(GracePeriod)
}

// ShouldMarkPastDue reports whether the sweeper must move this subscription
// to past_due: the period has lapsed but the grace deadline has not hit.
func (s *Subscription) ShouldMarkPastDue(now time.Time) bool {
	return s.status == vo.StatusActive &&
		now.After(s.currentPeriodEnd) &&
		now.Before(s.GraceDeadline())
}

// ShouldMarkExpired reports whether the sweeper must move this subscription
// to expired: the grace deadline has been reached (inclusive).
func (s *Subscription) ShouldMarkExpired(now time.Time) bool {
	if s.status != vo.StatusActive && s.status != vo.StatusPastDue {
		return false
	}
	return !now.Before(s.GraceDeadline())
}

// MarkPastDue transitions the subscription into the grace window.
func (s *Subscription) MarkPastDue() error {
	if !s.status.CanTransitionTo(vo.StatusPastDue) {
		return fmt.Errorf("cannot mark %s subscription as past_due", s.status)
	}
	s.status = vo.StatusPastDue
	s.touch()
	return nil
}

// MarkExpired transitions the subscription to its terminal expired state.
func (s *Subscription) MarkExpired(now time.Time) error {
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot mark %s subscription as expired", s.status)
	}
	s.status = vo.StatusExpired
	expiredAt := now.UTC()
	s.expiredAt = &expiredAt
	s.touch()
	return nil
}

// Cancel terminates the subscription on customer or merchant request.
func (s *Subscription) Cancel(reason string) error {
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("cannot cancel %s subscription", s.status)
	}
	now := time.Now().UTC()
	s.status = vo.StatusCancelled
	s.cancelledAt = &now
	if reason != "" {
		s.cancelReason = &reason
	}
	s.touch()
	return nil
}

// Renew starts a fresh billing period after a confirmed payment. It is the
// only way out of expired. Notification watermarks are re-armed so the new
// period gets its own reminder.
func (s *Subscription) Renew(periodStart, periodEnd time.Time) error {
	if s.status == vo.StatusCancelled {
		return fmt.Errorf("cannot renew a cancelled subscription")
	}
	if !periodEnd.After(periodStart) {
		return fmt.Errorf("period end must be after period start")
	}
	s.status = vo.StatusActive
	s.currentPeriodStart = periodStart
	s.currentPeriodEnd = periodEnd
	s.expiredAt = nil
	s.notifiedExpiringAt = nil
	s.notifiedExpiredAt = nil
	s.touch()
	return nil
}

// NeedsExpiryReminder reports whether the customer should get a renewal
// reminder: still active, period ends within the reminder window, and no
// reminder has been sent for the current period yet.
func (s *Subscription) NeedsExpiryReminder(now time.Time, window time.Duration) bool {
	if s.status != vo.StatusActive {
		return false
	}
	if s.currentPeriodEnd.Before(now) || s.currentPeriodEnd.After(now.Add(window)) {
		return false
	}
	return s.notifiedExpiringAt == nil || s.notifiedExpiringAt.Before(s.currentPeriodStart)
}

// NeedsExpiredNotice reports whether the expiration notice is still owed:
// expired within the lookback window and not yet notified.
func (s *Subscription) NeedsExpiredNotice(now time.Time, lookback time.Duration) bool {
	if s.status != vo.StatusExpired || s.expiredAt == nil {
		return false
	}
	if s.expiredAt.Before(now.Add(-lookback)) {
		return false
	}
	return s.notifiedExpiredAt == nil
}

// MarkExpiryReminderSent stamps the reminder watermark for the current period.
func (s *Subscription) MarkExpiryReminderSent(now time.Time) {
	t := now.UTC()
	s.notifiedExpiringAt = &t
	s.touch()
}

// MarkExpiredNoticeSent stamps the expiration-notice watermark.
func (s *Subscription) MarkExpiredNoticeSent(now time.Time) {
	t := now.UTC()
	s.notifiedExpiredAt = &t
	s.touch()
}

func (s *Subscription) touch() {
	s.updatedAt = time.Now().UTC()
}

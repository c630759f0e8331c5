package platform

import (
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/shared/id"

	subvo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
)

// Subscription mirrors the merchant-facing subscription one level up: it
// binds a merchant account to a platform plan, with trial support. Platform
// payments are admin-confirmed the same way merchant payments are.
type Subscription struct {
	id                 uint
	sid                string
	merchantID         uint
	planID             uint
	status             subvo.SubscriptionStatus
	currentPeriodStart time.Time
	currentPeriodEnd   time.Time
	trialEndsAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewTrialSubscription starts a merchant on a plan's trial.
func NewTrialSubscription(merchantID uint, plan *Plan, now time.Time) (*Subscription, error) {
	if merchantID == 0 {
		return nil, fmt.Errorf("merchant ID is required")
	}
	if plan == nil || plan.ID() == 0 {
		return nil, fmt.Errorf("plan is required")
	}
	if plan.TrialDays() <= 0 {
		return nil, fmt.Errorf("plan %s has no trial", plan.Code())
	}

	trialEnd := now.UTC().AddDate(0, 0, plan.TrialDays())
	return &Subscription{
		sid:                id.MustGenerateWithPrefix(id.PrefixPlatformSubscription, id.DefaultLength),
		merchantID:         merchantID,
		planID:             plan.ID(),
		status:             subvo.StatusTrialing,
		currentPeriodStart: now.UTC(),
		currentPeriodEnd:   trialEnd,
		trialEndsAt:        &trialEnd,
		createdAt:          now.UTC(),
		updatedAt:          now.UTC(),
	}, nil
}

// NewSubscription starts a merchant on a paid (or free) plan directly.
func NewSubscription(merchantID, planID uint, periodStart, periodEnd time.Time) (*Subscription, error) {
	if merchantID == 0 {
		return nil, fmt.Errorf("merchant ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !periodEnd.After(periodStart) {
		return nil, fmt.Errorf("period end must be after period start")
	}

	now := time.Now().UTC()
	return &Subscription{
		sid:                id.MustGenerateWithPrefix(id.PrefixPlatformSubscription, id.DefaultLength),
		merchantID:         merchantID,
		planID:             planID,
		status:             subvo.StatusActive,
		currentPeriodStart: periodStart,
		currentPeriodEnd:   periodEnd,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructSubscriptionParams carries persisted state back into the aggregate.
type ReconstructSubscriptionParams struct {
	ID                 uint
	SID                string
	MerchantID         uint
	PlanID             uint
	Status             subvo.SubscriptionStatus
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	TrialEndsAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ReconstructSubscription rebuilds a platform subscription from persistence.
func ReconstructSubscription(p ReconstructSubscriptionParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("platform subscription ID cannot be zero")
	}
	if !subvo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid platform subscription status: %s", p.Status)
	}

	return &Subscription{
		id:                 p.ID,
		sid:                p.SID,
		merchantID:         p.MerchantID,
		planID:             p.PlanID,
		status:             p.Status,
		currentPeriodStart: p.CurrentPeriodStart,
		currentPeriodEnd:   p.CurrentPeriodEnd,
		trialEndsAt:        p.TrialEndsAt,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                         { return s.id }
func (s *Subscription) SID() string                      { return s.sid }
func (s *Subscription) MerchantID() uint                 { return s.merchantID }
func (s *Subscription) PlanID() uint                     { return s.planID }
func (s *Subscription) Status() subvo.SubscriptionStatus { return s.status }
func (s *Subscription) CurrentPeriodStart() time.Time    { return s.currentPeriodStart }
func (s *Subscription) CurrentPeriodEnd() time.Time      { return s.currentPeriodEnd }
func (s *Subscription) TrialEndsAt() *time.Time          { return s.trialEndsAt }
func (s *Subscription) CreatedAt() time.Time             { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time             { return s.updatedAt }

// SetID assigns the database identity after insert.
func (s *Subscription) SetID(newID uint) error {
	if s.id != 0 {
		return fmt.Errorf("platform subscription ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("platform subscription ID cannot be zero")
	}
	s.id = newID
	return nil
}

// IsTrialOver reports whether a trialing subscription has run out.
func (s *Subscription) IsTrialOver(now time.Time) bool {
	return s.status == subvo.StatusTrialing && s.trialEndsAt != nil && !s.trialEndsAt.After(now)
}

// FallBackToFree drops the merchant to the free tier, ending any trial.
// This is the cascade applied when the paid platform subscription lapses.
func (s *Subscription) FallBackToFree(freePlanID uint, now time.Time) error {
	if freePlanID == 0 {
		return ErrNoFreePlan
	}
	s.planID = freePlanID
	s.status = subvo.StatusActive
	s.currentPeriodStart = now.UTC()
	// The free tier has no billing period; keep a far-future end so the
	// sweeper never picks it up.
	s.currentPeriodEnd = now.UTC().AddDate(100, 0, 0)
	s.trialEndsAt = nil
	s.updatedAt = now.UTC()
	return nil
}

// Renew starts a new paid period after an admin-confirmed platform payment.
func (s *Subscription) Renew(planID uint, periodStart, periodEnd time.Time) error {
	if planID == 0 {
		return fmt.Errorf("plan ID is required")
	}
	if !periodEnd.After(periodStart) {
		return fmt.Errorf("period end must be after period start")
	}
	s.planID = planID
	s.status = subvo.StatusActive
	s.currentPeriodStart = periodStart
	s.currentPeriodEnd = periodEnd
	s.trialEndsAt = nil
	s.updatedAt = time.Now().UTC()
	return nil
}

package platform

import (
	"errors"
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/shared/id"
)

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrSubscriptionNotFound = errors.New("platform subscription not found")
	ErrNoFreePlan           = errors.New("free plan not configured")
)

// Plan codes. Every merchant falls back to the free plan when their paid
// platform subscription lapses.
const (
	PlanCodeFree    = "free"
	PlanCodeStarter = "starter"
	PlanCodeGrowth  = "growth"
)

// Features gates platform-level capabilities per plan.
type Features struct {
	APIAccess      bool `json:"api_access"`
	Webhooks       bool `json:"webhooks"`
	CustomBranding bool `json:"custom_branding"`
}

// Plan governs which platform features a merchant account may use.
type Plan struct {
	id        uint
	sid       string
	code      string
	name      string
	features  Features
	trialDays int
	amount    int64
	currency  string
	createdAt time.Time
	updatedAt time.Time
}

// NewPlan creates a platform plan.
func NewPlan(code, name string, features Features, trialDays int, amount int64, currency string) (*Plan, error) {
	if code == "" {
		return nil, fmt.Errorf("plan code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if trialDays < 0 {
		return nil, fmt.Errorf("trial days cannot be negative")
	}

	now := time.Now().UTC()
	return &Plan{
		sid:       id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
		code:      code,
		name:      name,
		features:  features,
		trialDays: trialDays,
		amount:    amount,
		currency:  currency,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(planID uint, sid, code, name string, features Features, trialDays int, amount int64, currency string, createdAt, updatedAt time.Time) (*Plan, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	return &Plan{
		id:        planID,
		sid:       sid,
		code:      code,
		name:      name,
		features:  features,
		trialDays: trialDays,
		amount:    amount,
		currency:  currency,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) SID() string          { return p.sid }
func (p *Plan) Code() string         { return p.code }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Features() Features   { return p.features }
func (p *Plan) TrialDays() int       { return p.trialDays }
func (p *Plan) Amount() int64        { return p.amount }
func (p *Plan) Currency() string     { return p.currency }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// IsFree reports whether this is the fallback tier.
func (p *Plan) IsFree() bool { return p.code == PlanCodeFree }

// SetID assigns the database identity after insert.
func (p *Plan) SetID(newID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = newID
	return nil
}

package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/lipagate/lipagate/internal/shared/id"
)

// BillingInterval is the subscription period a price buys.
type BillingInterval string

const (
	IntervalMonthly   BillingInterval = "monthly"
	IntervalQuarterly BillingInterval = "quarterly"
	IntervalYearly    BillingInterval = "yearly"
)

var ValidIntervals = map[BillingInterval]bool{
	IntervalMonthly:   true,
	IntervalQuarterly: true,
	IntervalYearly:    true,
}

// PeriodEnd returns the end of a billing period starting at the given time.
func (i BillingInterval) PeriodEnd(start time.Time) time.Time {
	switch i {
	case IntervalQuarterly:
		return start.AddDate(0, 3, 0)
	case IntervalYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// Price is one purchasable amount/interval combination for a product.
// Amounts are minor units (piasters, cents).
type Price struct {
	id        uint
	sid       string
	productID uint
	amount    int64
	currency  string
	interval  BillingInterval
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewPrice creates an active price for a product.
func NewPrice(productID uint, amount int64, currency string, interval BillingInterval) (*Price, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if !ValidIntervals[interval] {
		return nil, fmt.Errorf("invalid billing interval: %s", interval)
	}

	now := time.Now().UTC()
	return &Price{
		sid:       id.MustGenerateWithPrefix(id.PrefixPrice, id.DefaultLength),
		productID: productID,
		amount:    amount,
		currency:  strings.ToUpper(currency),
		interval:  interval,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructPrice rebuilds a price from persistence.
func ReconstructPrice(priceID uint, sid string, productID uint, amount int64, currency string, interval BillingInterval, active bool, createdAt, updatedAt time.Time) (*Price, error) {
	if priceID == 0 {
		return nil, fmt.Errorf("price ID cannot be zero")
	}
	if !ValidIntervals[interval] {
		return nil, fmt.Errorf("invalid billing interval: %s", interval)
	}
	return &Price{
		id:        priceID,
		sid:       sid,
		productID: productID,
		amount:    amount,
		currency:  currency,
		interval:  interval,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Price) ID() uint                  { return p.id }
func (p *Price) SID() string               { return p.sid }
func (p *Price) ProductID() uint           { return p.productID }
func (p *Price) Amount() int64             { return p.amount }
func (p *Price) Currency() string          { return p.currency }
func (p *Price) Interval() BillingInterval { return p.interval }
func (p *Price) IsActive() bool            { return p.active }
func (p *Price) CreatedAt() time.Time      { return p.createdAt }
func (p *Price) UpdatedAt() time.Time      { return p.updatedAt }

// SetID assigns the database identity after insert.
func (p *Price) SetID(newID uint) error {
	if p.id != 0 {
		return fmt.Errorf("price ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("price ID cannot be zero")
	}
	p.id = newID
	return nil
}

// Deactivate retires the price from new checkouts.
func (p *Price) Deactivate() {
	p.active = false
	p.updatedAt = time.Now().UTC()
}

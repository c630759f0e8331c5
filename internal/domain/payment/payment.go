package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/lipagate/lipagate/internal/shared/id"

	vo "github.com/lipagate/lipagate/internal/domain/payment/valueobjects"
)

// Payment is a claimed off-platform transaction awaiting manual verification.
// Confirmation is the sole trigger for subscription creation and renewal.
type Payment struct {
	id            uint
	sid           string
	reference     string
	merchantID    uint
	customerPhone string
	productID     uint
	priceID       uint
	amount        int64
	currency      string
	channel       vo.PaymentChannel
	status        vo.PaymentStatus
	confirmedBy   *uint
	confirmedAt   *time.Time
	failureReason *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPayment creates a pending payment claim at checkout, with a reference
// code the customer quotes in the mobile-money/bank narration.
func NewPayment(merchantID uint, customerPhone string, productID, priceID uint, amount int64, currency string, channel vo.PaymentChannel) (*Payment, error) {
	if merchantID == 0 {
		return nil, fmt.Errorf("merchant ID is required")
	}
	if customerPhone == "" {
		return nil, fmt.Errorf("customer phone is required")
	}
	if productID == 0 || priceID == 0 {
		return nil, fmt.Errorf("product and price are required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if !vo.ValidChannels[channel] {
		return nil, fmt.Errorf("invalid payment channel: %s", channel)
	}

	now := time.Now().UTC()
	return &Payment{
		sid:           id.MustGenerateWithPrefix(id.PrefixPayment, id.DefaultLength),
		reference:     newReference(),
		merchantID:    merchantID,
		customerPhone: customerPhone,
		productID:     productID,
		priceID:       priceID,
		amount:        amount,
		currency:      strings.ToUpper(currency),
		channel:       channel,
		status:        vo.StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// newReference builds a short human-typable code for payment narrations.
func newReference() string {
	return "LPG-" + strings.ToUpper(id.MustGenerate(8))
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID            uint
	SID           string
	Reference     string
	MerchantID    uint
	CustomerPhone string
	ProductID     uint
	PriceID       uint
	Amount        int64
	Currency      string
	Channel       vo.PaymentChannel
	Status        vo.PaymentStatus
	ConfirmedBy   *uint
	ConfirmedAt   *time.Time
	FailureReason *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstruct rebuilds a payment from persistence.
func Reconstruct(p ReconstructParams) (*Payment, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid payment status: %s", p.Status)
	}

	return &Payment{
		id:            p.ID,
		sid:           p.SID,
		reference:     p.Reference,
		merchantID:    p.MerchantID,
		customerPhone: p.CustomerPhone,
		productID:     p.ProductID,
		priceID:       p.PriceID,
		amount:        p.Amount,
		currency:      p.Currency,
		channel:       p.Channel,
		status:        p.Status,
		confirmedBy:   p.ConfirmedBy,
		confirmedAt:   p.ConfirmedAt,
		failureReason: p.FailureReason,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

func (p *Payment) ID() uint                    { return p.id }
func (p *Payment) SID() string                 { return p.sid }
func (p *Payment) Reference() string           { return p.reference }
func (p *Payment) MerchantID() uint            { return p.merchantID }
func (p *Payment) CustomerPhone() string       { return p.customerPhone }
func (p *Payment) ProductID() uint             { return p.productID }
func (p *Payment) PriceID() uint               { return p.priceID }
func (p *Payment) Amount() int64               { return p.amount }
func (p *Payment) Currency() string            { return p.currency }
func (p *Payment) Channel() vo.PaymentChannel  { return p.channel }
func (p *Payment) Status() vo.PaymentStatus    { return p.status }
func (p *Payment) ConfirmedBy() *uint          { return p.confirmedBy }
func (p *Payment) ConfirmedAt() *time.Time     { return p.confirmedAt }
func (p *Payment) FailureReason() *string      { return p.failureReason }
func (p *Payment) CreatedAt() time.Time        { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time        { return p.updatedAt }

// SetID assigns the database identity after insert.
func (p *Payment) SetID(newID uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = newID
	return nil
}

// Match records that an incoming transfer was tentatively matched to this claim.
func (p *Payment) Match() error {
	if !p.status.CanTransitionTo(vo.StatusMatched) {
		return fmt.Errorf("cannot match %s payment", p.status)
	}
	p.status = vo.StatusMatched
	p.touch()
	return nil
}

// Confirm finalizes the payment on explicit merchant/admin action.
func (p *Payment) Confirm(confirmedBy uint) error {
	if !p.status.CanTransitionTo(vo.StatusConfirmed) {
		return fmt.Errorf("cannot confirm %s payment", p.status)
	}
	now := time.Now().UTC()
	p.status = vo.StatusConfirmed
	p.confirmedBy = &confirmedBy
	p.confirmedAt = &now
	p.touch()
	return nil
}

// Fail rejects the claim.
func (p *Payment) Fail(reason string) error {
	if !p.status.CanTransitionTo(vo.StatusFailed) {
		return fmt.Errorf("cannot fail %s payment", p.status)
	}
	p.status = vo.StatusFailed
	if reason != "" {
		p.failureReason = &reason
	}
	p.touch()
	return nil
}

func (p *Payment) touch() {
	p.updatedAt = time.Now().UTC()
}

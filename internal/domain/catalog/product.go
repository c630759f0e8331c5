package catalog

import (
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/shared/id"
)

// Product is a sellable unit of a merchant's catalog. Subscriptions always
// point at one product; content items list the products that unlock them.
type Product struct {
	id          uint
	sid         string
	merchantID  uint
	name        string
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct creates an active product.
func NewProduct(merchantID uint, name, description string) (*Product, error) {
	if merchantID == 0 {
		return nil, fmt.Errorf("merchant ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}

	now := time.Now().UTC()
	return &Product{
		sid:         id.MustGenerateWithPrefix(id.PrefixProduct, id.DefaultLength),
		merchantID:  merchantID,
		name:        name,
		description: description,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProduct rebuilds a product from persistence.
func ReconstructProduct(productID uint, sid string, merchantID uint, name, description string, active bool, createdAt, updatedAt time.Time) (*Product, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	return &Product{
		id:          productID,
		sid:         sid,
		merchantID:  merchantID,
		name:        name,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Product) ID() uint            { return p.id }
func (p *Product) SID() string         { return p.sid }
func (p *Product) MerchantID() uint    { return p.merchantID }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) IsActive() bool      { return p.active }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// SetID assigns the database identity after insert.
func (p *Product) SetID(newID uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = newID
	return nil
}

// Deactivate removes the product from sale without breaking existing
// subscriptions.
func (p *Product) Deactivate() {
	p.active = false
	p.updatedAt = time.Now().UTC()
}

// Activate puts the product back on sale.
func (p *Product) Activate() {
	p.active = true
	p.updatedAt = time.Now().UTC()
}

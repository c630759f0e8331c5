package catalog

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrPriceNotFound   = errors.New("price not found")
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySID(ctx context.Context, sid string) (*Product, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Product, error)
	ListByMerchant(ctx context.Context, merchantID uint, activeOnly bool) ([]*Product, error)
	ListIDsByMerchant(ctx context.Context, merchantID uint) ([]uint, error)
}

// PriceRepository defines persistence operations for prices.
type PriceRepository interface {
	Create(ctx context.Context, price *Price) error
	Update(ctx context.Context, price *Price) error
	GetByID(ctx context.Context, id uint) (*Price, error)
	GetBySID(ctx context.Context, sid string) (*Price, error)
	ListByProduct(ctx context.Context, productID uint, activeOnly bool) ([]*Price, error)

	// CheapestActiveByProductIDs returns, per product, the cheapest active
	// price. Products without an active price are absent from the map.
	// This feeds the paywall upsell list.
	CheapestActiveByProductIDs(ctx context.Context, productIDs []uint) (map[uint]*Price, error)
}

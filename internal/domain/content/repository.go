package content

import (
	"context"
	"time"
)

// ViewLog is an append-only record of a granted view.
type ViewLog struct {
	ContentID   uint
	ViewerPhone string
	ViewerID    *uint
	ViewedAt    time.Time
}

// Repository defines persistence operations for content items.
type Repository interface {
	Create(ctx context.Context, item *Content) error
	Update(ctx context.Context, item *Content) error
	GetByID(ctx context.Context, id uint) (*Content, error)
	GetBySID(ctx context.Context, sid string) (*Content, error)
	GetBySlug(ctx context.Context, creatorID uint, slug string) (*Content, error)
	ListByCreator(ctx context.Context, creatorID uint, page, pageSize int) ([]*Content, int64, error)

	// IncrementViewCount bumps the counter and appends the view log in one
	// round trip, so granted views stay cheap.
	IncrementViewCount(ctx context.Context, contentID uint, log ViewLog) error
}

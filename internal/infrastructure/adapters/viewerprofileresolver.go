// Package adapters provides infrastructure adapters.
package adapters

import (
	"context"

	accessUsecases "github.com/lipagate/lipagate/internal/application/access/usecases"
	"github.com/lipagate/lipagate/internal/domain/merchant"
)

// ViewerProfileResolverAdapter implements access usecases'
// ViewerProfileResolver over the merchant repository. Logged-in viewers are
// merchants browsing other creators' content; their stored phone stands in
// when a request carries none.
type ViewerProfileResolverAdapter struct {
	merchantRepo merchant.Repository
}

var _ accessUsecases.ViewerProfileResolver = (*ViewerProfileResolverAdapter)(nil)

// NewViewerProfileResolverAdapter creates a new ViewerProfileResolverAdapter.
func NewViewerProfileResolverAdapter(merchantRepo merchant.Repository) *ViewerProfileResolverAdapter {
	return &ViewerProfileResolverAdapter{merchantRepo: merchantRepo}
}

// PhoneByUserID returns the stored phone for the user, or empty when the
// account does not exist or has no phone on file.
func (a *ViewerProfileResolverAdapter) PhoneByUserID(ctx context.Context, userID uint) (string, error) {
	m, err := a.merchantRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", nil
	}
	return m.Phone(), nil
}

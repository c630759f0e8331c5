package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/content"
	"github.com/lipagate/lipagate/internal/domain/creator"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// ListContentUseCase pages through a merchant's content library.
type ListContentUseCase struct {
	contentRepo content.Repository
	creatorRepo creator.Repository
	logger      logger.Interface
}

// NewListContentUseCase creates the use case.
func NewListContentUseCase(contentRepo content.Repository, creatorRepo creator.Repository, logger logger.Interface) *ListContentUseCase {
	return &ListContentUseCase{contentRepo: contentRepo, creatorRepo: creatorRepo, logger: logger}
}

// Execute lists the content items of the merchant's creator profile.
func (uc *ListContentUseCase) Execute(ctx context.Context, merchantID uint, page, pageSize int) ([]*content.Content, int64, error) {
	cr, err := uc.creatorRepo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		uc.logger.Errorw("failed to load creator profile", "merchant_id", merchantID, "error", err)
		return nil, 0, errors.NewInternalError("failed to load creator profile")
	}
	if cr == nil {
		return nil, 0, errors.NewNotFoundError("creator profile not found")
	}

	items, total, err := uc.contentRepo.ListByCreator(ctx, cr.ID(), page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list content", "creator_id", cr.ID(), "error", err)
		return nil, 0, errors.NewInternalError("failed to list content")
	}
	return items, total, nil
}

package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/content"
	"github.com/lipagate/lipagate/internal/domain/creator"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// PublishContentUseCase moves a draft to published.
type PublishContentUseCase struct {
	contentRepo content.Repository
	creatorRepo creator.Repository
	logger      logger.Interface
}

// NewPublishContentUseCase creates the use case.
func NewPublishContentUseCase(
	contentRepo content.Repository,
	creatorRepo creator.Repository,
	logger logger.Interface,
) *PublishContentUseCase {
	return &PublishContentUseCase{
		contentRepo: contentRepo,
		creatorRepo: creatorRepo,
		logger:      logger,
	}
}

// Execute publishes the item after an ownership check.
func (uc *PublishContentUseCase) Execute(ctx context.Context, merchantID uint, contentSID string) (*content.Content, error) {
	item, err := uc.contentRepo.GetBySID(ctx, contentSID)
	if err != nil {
		uc.logger.Errorw("failed to load content", "content_sid", contentSID, "error", err)
		return nil, errors.NewInternalError("failed to load content")
	}
	if item == nil {
		return nil, errors.NewNotFoundError("content not found")
	}

	cr, err := uc.creatorRepo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		uc.logger.Errorw("failed to load creator profile", "merchant_id", merchantID, "error", err)
		return nil, errors.NewInternalError("failed to load creator profile")
	}
	if cr == nil || cr.ID() != item.CreatorID() {
		return nil, errors.NewForbiddenError("content belongs to another creator")
	}

	if err := item.Publish(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.contentRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to publish content", "content_sid", contentSID, "error", err)
		return nil, errors.NewInternalError("failed to publish content")
	}

	uc.logger.Infow("content published", "content_sid", item.SID(), "creator_id", item.CreatorID())
	return item, nil
}

package usecases

import (
	"context"

	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/content"
	vo "github.com/lipagate/lipagate/internal/domain/content/valueobjects"
	"github.com/lipagate/lipagate/internal/domain/creator"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// CreateContentInput describes a new draft.
type CreateContentInput struct {
	MerchantID  uint
	Kind        string
	Title       string
	Slug        string
	Body        string
	Visibility  string
	ProductSIDs []string
}

// CreateContentUseCase creates a draft content item under the merchant's
// creator profile, renders the body and binds the unlocking products.
type CreateContentUseCase struct {
	contentRepo content.Repository
	creatorRepo creator.Repository
	productRepo catalog.ProductRepository
	renderer    BodyRenderer
	logger      logger.Interface
}

// NewCreateContentUseCase creates the use case.
func NewCreateContentUseCase(
	contentRepo content.Repository,
	creatorRepo creator.Repository,
	productRepo catalog.ProductRepository,
	renderer BodyRenderer,
	logger logger.Interface,
) *CreateContentUseCase {
	return &CreateContentUseCase{
		contentRepo: contentRepo,
		creatorRepo: creatorRepo,
		productRepo: productRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute creates the draft.
func (uc *CreateContentUseCase) Execute(ctx context.Context, input CreateContentInput) (*content.Content, error) {
	cr, err := uc.creatorRepo.GetByMerchantID(ctx, input.MerchantID)
	if err != nil {
		uc.logger.Errorw("failed to load creator profile", "merchant_id", input.MerchantID, "error", err)
		return nil, errors.NewInternalError("failed to load creator profile")
	}
	if cr == nil {
		return nil, errors.NewNotFoundError("creator profile not found")
	}

	item, err := content.NewContent(
		cr.ID(),
		vo.ContentKind(input.Kind),
		input.Title,
		input.Slug,
		input.Body,
		vo.Visibility(input.Visibility),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if input.Body != "" {
		html, err := uc.renderer.Render(input.Body)
		if err != nil {
			uc.logger.Warnw("body rendering failed, storing raw body only", "error", err)
		} else {
			item.RenderBody(html)
		}
	}

	if len(input.ProductSIDs) > 0 {
		productIDs, err := uc.resolveProducts(ctx, input.MerchantID, input.ProductSIDs)
		if err != nil {
			return nil, err
		}
		item.SetProducts(productIDs)
	}

	if err := uc.contentRepo.Create(ctx, item); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("slug already in use")
		}
		uc.logger.Errorw("failed to create content", "error", err)
		return nil, errors.NewInternalError("failed to create content")
	}

	return item, nil
}

// resolveProducts maps product SIDs to IDs, rejecting products of other
// merchants.
func (uc *CreateContentUseCase) resolveProducts(ctx context.Context, merchantID uint, sids []string) ([]uint, error) {
	ids := make([]uint, 0, len(sids))
	for _, sid := range sids {
		p, err := uc.productRepo.GetBySID(ctx, sid)
		if err != nil {
			uc.logger.Errorw("failed to load product", "product_sid", sid, "error", err)
			return nil, errors.NewInternalError("failed to load product")
		}
		if p == nil || p.MerchantID() != merchantID {
			return nil, errors.NewValidationError("unknown product: " + sid)
		}
		ids = append(ids, p.ID())
	}
	return ids, nil
}

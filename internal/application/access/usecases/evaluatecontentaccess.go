package usecases

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/lipagate/lipagate/internal/application/access/dto"
	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/content"
	"github.com/lipagate/lipagate/internal/domain/subscription"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// ContentAccessQuery identifies the target and the viewer. ViewerPhone is the
// explicitly supplied number (query string); RequestURL builds the post-login
// redirect.
type ContentAccessQuery struct {
	ContentSID   string
	ViewerUserID *uint
	ViewerPhone  string
	RequestURL   string
}

// EvaluateContentAccessUseCase decides whether a viewer may see a gated
// content item. The only side effect is the view record on granted outcomes.
//
// Lookup failures during the entitlement check fail closed: the viewer gets
// the paywall, never a grant.
type EvaluateContentAccessUseCase struct {
	contentRepo content.Repository
	subRepo     subscription.Repository
	productRepo catalog.ProductRepository
	priceRepo   catalog.PriceRepository
	profiles    ViewerProfileResolver
	logger      logger.Interface
}

// NewEvaluateContentAccessUseCase creates the content access evaluator.
func NewEvaluateContentAccessUseCase(
	contentRepo content.Repository,
	subRepo subscription.Repository,
	productRepo catalog.ProductRepository,
	priceRepo catalog.PriceRepository,
	profiles ViewerProfileResolver,
	logger logger.Interface,
) *EvaluateContentAccessUseCase {
	return &EvaluateContentAccessUseCase{
		contentRepo: contentRepo,
		subRepo:     subRepo,
		productRepo: productRepo,
		priceRepo:   priceRepo,
		profiles:    profiles,
		logger:      logger,
	}
}

// Execute runs the decision procedure.
func (uc *EvaluateContentAccessUseCase) Execute(ctx context.Context, q ContentAccessQuery) (*dto.AccessResult, error) {
	item, err := uc.contentRepo.GetBySID(ctx, q.ContentSID)
	if err != nil {
		uc.logger.Errorw("content lookup failed", "content_sid", q.ContentSID, "error", err)
		return &dto.AccessResult{Decision: dto.DecisionDenied}, nil
	}
	if item == nil || !item.IsPublished() {
		return &dto.AccessResult{Decision: dto.DecisionDenied}, nil
	}

	if !item.IsPremium() {
		uc.recordView(ctx, item, q)
		return &dto.AccessResult{Decision: dto.DecisionGranted, Reason: dto.ReasonFree}, nil
	}

	if q.ViewerUserID == nil && q.ViewerPhone == "" {
		return &dto.AccessResult{
			Decision: dto.DecisionAuthRequired,
			LoginURL: loginRedirect(q.RequestURL),
		}, nil
	}

	phone, err := uc.resolvePhone(ctx, q)
	if err != nil {
		uc.logger.Warnw("viewer phone resolution failed, treating as unentitled",
			"content_sid", q.ContentSID, "error", err)
	}

	entitled := false
	productIDs := item.ProductIDs()
	if phone != "" && len(productIDs) > 0 {
		entitled, err = uc.subRepo.ExistsEntitling(ctx, phone, productIDs, time.Now().UTC())
		if err != nil {
			// Fail closed: a lookup error must never surface as a grant.
			uc.logger.Errorw("entitlement lookup failed, failing closed",
				"content_sid", q.ContentSID, "error", err)
			entitled = false
		}
	}

	if entitled {
		uc.recordView(ctx, item, q)
		return &dto.AccessResult{Decision: dto.DecisionGranted, Reason: dto.ReasonEntitled}, nil
	}

	return &dto.AccessResult{
		Decision: dto.DecisionPaywall,
		Products: uc.paywallProducts(ctx, productIDs),
	}, nil
}

// resolvePhone prefers the explicitly supplied phone over the stored profile
// phone, even when they differ.
func (uc *EvaluateContentAccessUseCase) resolvePhone(ctx context.Context, q ContentAccessQuery) (string, error) {
	if q.ViewerPhone != "" {
		return q.ViewerPhone, nil
	}
	if q.ViewerUserID == nil {
		return "", nil
	}
	phone, err := uc.profiles.PhoneByUserID(ctx, *q.ViewerUserID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve viewer phone: %w", err)
	}
	return phone, nil
}

// recordView bumps the counter and appends the view log. Failures are logged
// but never turn a grant into an error.
func (uc *EvaluateContentAccessUseCase) recordView(ctx context.Context, item *content.Content, q ContentAccessQuery) {
	log := content.ViewLog{
		ContentID:   item.ID(),
		ViewerPhone: q.ViewerPhone,
		ViewerID:    q.ViewerUserID,
		ViewedAt:    time.Now().UTC(),
	}
	if err := uc.contentRepo.IncrementViewCount(ctx, item.ID(), log); err != nil {
		uc.logger.Warnw("failed to record content view", "content_id", item.ID(), "error", err)
	}
}

// paywallProducts assembles the upsell list: each unlocking product with its
// cheapest active price. A premium item with no unlocking products yields an
// empty list.
func (uc *EvaluateContentAccessUseCase) paywallProducts(ctx context.Context, productIDs []uint) []dto.PaywallProduct {
	if len(productIDs) == 0 {
		return nil
	}

	products, err := uc.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		uc.logger.Errorw("failed to load paywall products", "error", err)
		return nil
	}
	prices, err := uc.priceRepo.CheapestActiveByProductIDs(ctx, productIDs)
	if err != nil {
		uc.logger.Errorw("failed to load paywall prices", "error", err)
		return nil
	}

	out := make([]dto.PaywallProduct, 0, len(products))
	for _, p := range products {
		if !p.IsActive() {
			continue
		}
		price, ok := prices[p.ID()]
		if !ok {
			continue
		}
		out = append(out, dto.PaywallProduct{
			ProductSID:  p.SID(),
			Name:        p.Name(),
			Description: p.Description(),
			PriceSID:    price.SID(),
			Amount:      price.Amount(),
			Currency:    price.Currency(),
			Interval:    string(price.Interval()),
		})
	}
	return out
}

// loginRedirect builds a login URL that round-trips back to the current page.
func loginRedirect(requestURL string) string {
	return "/login?redirect=" + url.QueryEscape(requestURL)
}

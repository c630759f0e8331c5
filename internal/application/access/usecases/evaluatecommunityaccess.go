package usecases

import (
	"context"
	"time"

	"github.com/lipagate/lipagate/internal/application/access/dto"
	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/creator"
	"github.com/lipagate/lipagate/internal/domain/subscription"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// CommunityAccessQuery identifies a creator's community and the viewer.
type CommunityAccessQuery struct {
	Username     string
	ViewerUserID *uint
	ViewerPhone  string
	RequestURL   string
}

// EvaluateCommunityAccessUseCase decides whether a viewer may enter a
// creator's community. Communities are premium unless the creator disabled
// gating, and a subscription to ANY of the creator's products entitles.
type EvaluateCommunityAccessUseCase struct {
	creatorRepo creator.Repository
	subRepo     subscription.Repository
	productRepo catalog.ProductRepository
	priceRepo   catalog.PriceRepository
	profiles    ViewerProfileResolver
	logger      logger.Interface
}

// NewEvaluateCommunityAccessUseCase creates the community access evaluator.
func NewEvaluateCommunityAccessUseCase(
	creatorRepo creator.Repository,
	subRepo subscription.Repository,
	productRepo catalog.ProductRepository,
	priceRepo catalog.PriceRepository,
	profiles ViewerProfileResolver,
	logger logger.Interface,
) *EvaluateCommunityAccessUseCase {
	return &EvaluateCommunityAccessUseCase{
		creatorRepo: creatorRepo,
		subRepo:     subRepo,
		productRepo: productRepo,
		priceRepo:   priceRepo,
		profiles:    profiles,
		logger:      logger,
	}
}

// Execute runs the decision procedure for a community.
func (uc *EvaluateCommunityAccessUseCase) Execute(ctx context.Context, q CommunityAccessQuery) (*dto.AccessResult, error) {
	cr, err := uc.creatorRepo.GetByUsername(ctx, q.Username)
	if err != nil {
		uc.logger.Errorw("creator lookup failed", "username", q.Username, "error", err)
		return &dto.AccessResult{Decision: dto.DecisionDenied}, nil
	}
	if cr == nil {
		return &dto.AccessResult{Decision: dto.DecisionDenied}, nil
	}

	if !cr.CommunityPremium() {
		return &dto.AccessResult{Decision: dto.DecisionGranted, Reason: dto.ReasonFree}, nil
	}

	if q.ViewerUserID == nil && q.ViewerPhone == "" {
		return &dto.AccessResult{
			Decision: dto.DecisionAuthRequired,
			LoginURL: loginRedirect(q.RequestURL),
		}, nil
	}

	phone := q.ViewerPhone
	if phone == "" && q.ViewerUserID != nil {
		phone, err = uc.profiles.PhoneByUserID(ctx, *q.ViewerUserID)
		if err != nil {
			uc.logger.Warnw("viewer phone resolution failed, treating as unentitled",
				"username", q.Username, "error", err)
			phone = ""
		}
	}

	productIDs, err := uc.productRepo.ListIDsByMerchant(ctx, cr.MerchantID())
	if err != nil {
		uc.logger.Errorw("failed to list creator products, failing closed",
			"username", q.Username, "error", err)
		productIDs = nil
	}

	entitled := false
	if phone != "" && len(productIDs) > 0 {
		entitled, err = uc.subRepo.ExistsEntitling(ctx, phone, productIDs, time.Now().UTC())
		if err != nil {
			uc.logger.Errorw("entitlement lookup failed, failing closed",
				"username", q.Username, "error", err)
			entitled = false
		}
	}

	if entitled {
		return &dto.AccessResult{Decision: dto.DecisionGranted, Reason: dto.ReasonEntitled}, nil
	}

	return &dto.AccessResult{
		Decision: dto.DecisionPaywall,
		Products: uc.paywallProducts(ctx, productIDs),
	}, nil
}

func (uc *EvaluateCommunityAccessUseCase) paywallProducts(ctx context.Context, productIDs []uint) []dto.PaywallProduct {
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

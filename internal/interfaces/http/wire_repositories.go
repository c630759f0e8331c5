package http

import (
	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/domain/content"
	"github.com/lipagate/lipagate/internal/domain/creator"
	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/domain/payment"
	"github.com/lipagate/lipagate/internal/domain/platform"
	"github.com/lipagate/lipagate/internal/domain/subscription"
	"github.com/lipagate/lipagate/internal/infrastructure/repository"
)

type repositories struct {
	merchantRepo    merchant.Repository
	creatorRepo     creator.Repository
	contentRepo     content.Repository
	productRepo     catalog.ProductRepository
	priceRepo       catalog.PriceRepository
	subscriptionRepo subscription.Repository
	paymentRepo     payment.Repository
	planRepo        platform.PlanRepository
	platformSubRepo platform.SubscriptionRepository
}

func (c *Container) wireRepositories() {
	c.repos = &repositories{
		merchantRepo:    repository.NewMerchantRepository(c.db),
		creatorRepo:     repository.NewCreatorRepository(c.db),
		contentRepo:     repository.NewContentRepository(c.db),
		productRepo:     repository.NewProductRepository(c.db),
		priceRepo:       repository.NewPriceRepository(c.db),
		subscriptionRepo: repository.NewSubscriptionRepository(c.db),
		paymentRepo:     repository.NewPaymentRepository(c.db),
		planRepo:        repository.NewPlanRepository(c.db),
		platformSubRepo: repository.NewPlatformSubscriptionRepository(c.db),
	}
}

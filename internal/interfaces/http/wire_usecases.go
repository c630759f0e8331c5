package http

import (
	"time"

	accessUsecases "github.com/lipagate/lipagate/internal/application/access/usecases"
	catalogUsecases "github.com/lipagate/lipagate/internal/application/catalog/usecases"
	contentUsecases "github.com/lipagate/lipagate/internal/application/content/usecases"
	lifecycleUsecases "github.com/lipagate/lipagate/internal/application/lifecycle/usecases"
	merchantUsecases "github.com/lipagate/lipagate/internal/application/merchant/usecases"
	paymentUsecases "github.com/lipagate/lipagate/internal/application/payment/usecases"
	"github.com/lipagate/lipagate/internal/infrastructure/adapters"
)

type useCases struct {
	registerUC *merchantUsecases.RegisterMerchantUseCase
	loginUC    *merchantUsecases.LoginMerchantUseCase

	contentAccessUC   *accessUsecases.EvaluateContentAccessUseCase
	communityAccessUC *accessUsecases.EvaluateCommunityAccessUseCase

	sweepUC    *lifecycleUsecases.SweepSubscriptionsUseCase
	trialsUC   *lifecycleUsecases.CheckTrialsUseCase
	listSubsUC *lifecycleUsecases.ListSubscriptionsUseCase

	checkoutUC     *paymentUsecases.InitiateCheckoutUseCase
	confirmUC      *paymentUsecases.ConfirmPaymentUseCase
	listPaymentsUC *paymentUsecases.ListPaymentsUseCase

	createContentUC  *contentUsecases.CreateContentUseCase
	publishContentUC *contentUsecases.PublishContentUseCase
	listContentUC    *contentUsecases.ListContentUseCase

	createProductUC *catalogUsecases.CreateProductUseCase
	createPriceUC   *catalogUsecases.CreatePriceUseCase
	listProductsUC  *catalogUsecases.ListProductsUseCase
}

func (c *Container) wireUseCases() {
	r := c.repos
	profiles := adapters.NewViewerProfileResolverAdapter(r.merchantRepo)

	// A nil *SweepLock must stay a nil interface so the sweep knows it has
	// no lock backend.
	var locker lifecycleUsecases.SweepLocker
	if c.sweepLock != nil {
		locker = c.sweepLock
	}

	sweepUC := lifecycleUsecases.NewSweepSubscriptionsUseCase(
		r.subscriptionRepo,
		r.platformSubRepo,
		r.planRepo,
		r.merchantRepo,
		r.productRepo,
		c.dispatcher,
		locker,
		c.log,
	)
	if ttl := c.cfg.Sweep.LockTTLSeconds; ttl > 0 {
		sweepUC.SetLockTTL(time.Duration(ttl) * time.Second)
	}

	c.ucs = &useCases{
		registerUC: merchantUsecases.NewRegisterMerchantUseCase(
			r.merchantRepo, r.creatorRepo, r.platformSubRepo, r.planRepo,
			c.cfg.Auth.Password.BcryptCost, c.log,
		),
		loginUC: merchantUsecases.NewLoginMerchantUseCase(r.merchantRepo, c.jwtIssuer, c.log),

		contentAccessUC: accessUsecases.NewEvaluateContentAccessUseCase(
			r.contentRepo, r.subscriptionRepo, r.productRepo, r.priceRepo, profiles, c.log,
		),
		communityAccessUC: accessUsecases.NewEvaluateCommunityAccessUseCase(
			r.creatorRepo, r.subscriptionRepo, r.productRepo, r.priceRepo, profiles, c.log,
		),

		sweepUC: sweepUC,
		trialsUC: lifecycleUsecases.NewCheckTrialsUseCase(
			r.platformSubRepo, r.planRepo, r.merchantRepo, c.dispatcher, c.log,
		),
		listSubsUC: lifecycleUsecases.NewListSubscriptionsUseCase(r.subscriptionRepo, c.log),

		checkoutUC: paymentUsecases.NewInitiateCheckoutUseCase(
			r.paymentRepo, r.priceRepo, r.productRepo, c.log,
		),
		confirmUC: paymentUsecases.NewConfirmPaymentUseCase(
			r.paymentRepo, r.subscriptionRepo, r.priceRepo, r.productRepo, c.dispatcher, c.log,
		),
		listPaymentsUC: paymentUsecases.NewListPaymentsUseCase(r.paymentRepo, c.log),

		createContentUC: contentUsecases.NewCreateContentUseCase(
			r.contentRepo, r.creatorRepo, r.productRepo, c.renderer, c.log,
		),
		publishContentUC: contentUsecases.NewPublishContentUseCase(r.contentRepo, r.creatorRepo, c.log),
		listContentUC:    contentUsecases.NewListContentUseCase(r.contentRepo, r.creatorRepo, c.log),

		createProductUC: catalogUsecases.NewCreateProductUseCase(r.productRepo, c.log),
		createPriceUC:   catalogUsecases.NewCreatePriceUseCase(r.productRepo, r.priceRepo, c.log),
		listProductsUC:  catalogUsecases.NewListProductsUseCase(r.productRepo, r.priceRepo, c.log),
	}
}

package http

import (
	"github.com/lipagate/lipagate/internal/interfaces/http/handlers"
)

type handlerSet struct {
	authHandler         *handlers.AuthHandler
	accessHandler       *handlers.AccessHandler
	cronHandler         *handlers.CronHandler
	paymentHandler      *handlers.PaymentHandler
	contentHandler      *handlers.ContentHandler
	catalogHandler      *handlers.CatalogHandler
	subscriptionHandler *handlers.SubscriptionHandler
}

func (c *Container) wireHandlers() {
	u := c.ucs
	c.hdlrs = &handlerSet{
		authHandler:         handlers.NewAuthHandler(u.registerUC, u.loginUC),
		accessHandler:       handlers.NewAccessHandler(u.contentAccessUC, u.communityAccessUC),
		cronHandler:         handlers.NewCronHandler(u.sweepUC, u.trialsUC),
		paymentHandler:      handlers.NewPaymentHandler(u.checkoutUC, u.confirmUC, u.listPaymentsUC),
		contentHandler:      handlers.NewContentHandler(u.createContentUC, u.publishContentUC, u.listContentUC),
		catalogHandler:      handlers.NewCatalogHandler(u.createProductUC, u.createPriceUC, u.listProductsUC),
		subscriptionHandler: handlers.NewSubscriptionHandler(u.listSubsUC),
	}
}

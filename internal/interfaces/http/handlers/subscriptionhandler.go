package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/application/lifecycle/usecases"
	"github.com/lipagate/lipagate/internal/domain/subscription"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

type SubscriptionHandler struct {
	listUC *usecases.ListSubscriptionsUseCase
	logger logger.Interface
}

func NewSubscriptionHandler(listUC *usecases.ListSubscriptionsUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{
		listUC: listUC,
		logger: logger.NewLogger(),
	}
}

type subscriptionResponse struct {
	SubscriptionID     string     `json:"subscription_id"`
	CustomerPhone      string     `json:"customer_phone"`
	Status             string     `json:"status"`
	CurrentPeriodStart time.Time  `json:"current_period_start"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end"`
	ExpiredAt          *time.Time `json:"expired_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toSubscriptionResponse(sub *subscription.Subscription) subscriptionResponse {
	return subscriptionResponse{
		SubscriptionID:     sub.SID(),
		CustomerPhone:      sub.CustomerPhone(),
		Status:             sub.Status().String(),
		CurrentPeriodStart: sub.CurrentPeriodStart(),
		CurrentPeriodEnd:   sub.CurrentPeriodEnd(),
		ExpiredAt:          sub.ExpiredAt(),
		CancelledAt:        sub.CancelledAt(),
		CreatedAt:          sub.CreatedAt(),
	}
}

// List pages through the merchant's customer subscriptions.
func (h *SubscriptionHandler) List(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	subs, total, err := h.listUC.Execute(c.Request.Context(), merchantID, page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]subscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		items = append(items, toSubscriptionResponse(sub))
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

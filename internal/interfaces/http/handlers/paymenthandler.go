package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/application/payment/usecases"
	"github.com/lipagate/lipagate/internal/domain/payment"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

type PaymentHandler struct {
	checkoutUC *usecases.InitiateCheckoutUseCase
	confirmUC  *usecases.ConfirmPaymentUseCase
	listUC     *usecases.ListPaymentsUseCase
	logger     logger.Interface
}

func NewPaymentHandler(
	checkoutUC *usecases.InitiateCheckoutUseCase,
	confirmUC *usecases.ConfirmPaymentUseCase,
	listUC *usecases.ListPaymentsUseCase,
) *PaymentHandler {
	return &PaymentHandler{
		checkoutUC: checkoutUC,
		confirmUC:  confirmUC,
		listUC:     listUC,
		logger:     logger.NewLogger(),
	}
}

type CheckoutRequest struct {
	PriceID       string `json:"price_id" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required,msisdn"`
	Channel       string `json:"channel" binding:"required,oneof=mobile_money bank_transfer"`
}

type paymentResponse struct {
	PaymentID     string     `json:"payment_id"`
	Reference     string     `json:"reference"`
	CustomerPhone string     `json:"customer_phone"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	Channel       string     `json:"channel"`
	Status        string     `json:"status"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	FailureReason *string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toPaymentResponse(pay *payment.Payment) paymentResponse {
	return paymentResponse{
		PaymentID:     pay.SID(),
		Reference:     pay.Reference(),
		CustomerPhone: pay.CustomerPhone(),
		Amount:        pay.Amount(),
		Currency:      pay.Currency(),
		Channel:       pay.Channel().String(),
		Status:        pay.Status().String(),
		ConfirmedAt:   pay.ConfirmedAt(),
		FailureReason: pay.FailureReason(),
		CreatedAt:     pay.CreatedAt(),
	}
}

// Checkout creates a pending payment claim and hands back the reference the
// customer quotes in their transfer narration. Public, no auth.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	output, err := h.checkoutUC.Execute(c.Request.Context(), usecases.CheckoutInput{
		PriceSID:      req.PriceID,
		CustomerPhone: req.CustomerPhone,
		Channel:       req.Channel,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, output, "Checkout initiated")
}

// Confirm finalizes a manually verified payment and creates or renews the
// customer's subscription.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	sid := c.Param("sid")
	if sid == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Payment ID is required")
		return
	}

	output, err := h.confirmUC.Execute(c.Request.Context(), usecases.ConfirmPaymentInput{
		PaymentSID:  sid,
		ConfirmedBy: merchantID,
		IsAdmin:     middleware.IsAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", output)
}

// List pages through the merchant's payment claims.
func (h *PaymentHandler) List(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := c.Query("status")

	payments, total, err := h.listUC.Execute(c.Request.Context(), merchantID, status, page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]paymentResponse, 0, len(payments))
	for _, pay := range payments {
		items = append(items, toPaymentResponse(pay))
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

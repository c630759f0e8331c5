package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/application/merchant/usecases"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

type AuthHandler struct {
	registerUC *usecases.RegisterMerchantUseCase
	loginUC    *usecases.LoginMerchantUseCase
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterMerchantUseCase,
	loginUC *usecases.LoginMerchantUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger.NewLogger(),
	}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"omitempty,msisdn"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	Username    string `json:"username" binding:"required,min=3,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a merchant account with its creator profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	output, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterInput{
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Username:    req.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, output, "Merchant registered successfully")
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	output, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", output)
}

package usecases

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// TokenIssuer mints access tokens for authenticated merchants.
type TokenIssuer interface {
	Issue(merchantID uint, admin bool) (string, error)
}

// LoginInput carries the credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the bearer token.
type LoginOutput struct {
	Token       string `json:"token"`
	MerchantSID string `json:"merchant_id"`
}

// LoginMerchantUseCase authenticates a merchant by email and password.
type LoginMerchantUseCase struct {
	merchantRepo merchant.Repository
	tokens       TokenIssuer
	logger       logger.Interface
}

// NewLoginMerchantUseCase creates the use case.
func NewLoginMerchantUseCase(merchantRepo merchant.Repository, tokens TokenIssuer, logger logger.Interface) *LoginMerchantUseCase {
	return &LoginMerchantUseCase{merchantRepo: merchantRepo, tokens: tokens, logger: logger}
}

// Execute verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (uc *LoginMerchantUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	m, err := uc.merchantRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to load merchant for login", "error", err)
		return nil, errors.NewInternalError("login failed")
	}
	if m == nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash()), []byte(input.Password)); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Issue(m.ID(), m.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "merchant_id", m.ID(), "error", err)
		return nil, errors.NewInternalError("login failed")
	}

	return &LoginOutput{Token: token, MerchantSID: m.SID()}, nil
}

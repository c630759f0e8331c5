package usecases

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lipagate/lipagate/internal/domain/creator"
	"github.com/lipagate/lipagate/internal/domain/merchant"
	"github.com/lipagate/lipagate/internal/domain/platform"
	"github.com/lipagate/lipagate/internal/shared/errors"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// RegisterInput describes a new merchant signup.
type RegisterInput struct {
	Email       string
	Phone       string
	Password    string
	DisplayName string
	Username    string
}

// RegisterOutput reports the created account.
type RegisterOutput struct {
	MerchantSID string `json:"merchant_id"`
	CreatorSID  string `json:"creator_id"`
}

// RegisterMerchantUseCase creates the merchant account, its creator profile
// and its platform subscription (trial when the starter plan offers one,
// free tier otherwise).
type RegisterMerchantUseCase struct {
	merchantRepo merchant.Repository
	creatorRepo  creator.Repository
	platformRepo platform.SubscriptionRepository
	planRepo     platform.PlanRepository
	bcryptCost   int
	logger       logger.Interface
}

// NewRegisterMerchantUseCase creates the use case.
func NewRegisterMerchantUseCase(
	merchantRepo merchant.Repository,
	creatorRepo creator.Repository,
	platformRepo platform.SubscriptionRepository,
	planRepo platform.PlanRepository,
	bcryptCost int,
	logger logger.Interface,
) *RegisterMerchantUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &RegisterMerchantUseCase{
		merchantRepo: merchantRepo,
		creatorRepo:  creatorRepo,
		platformRepo: platformRepo,
		planRepo:     planRepo,
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

// Execute registers the merchant.
func (uc *RegisterMerchantUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.merchantRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing merchant", "error", err)
		return nil, errors.NewInternalError("failed to check existing merchant")
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	m, err := merchant.NewMerchant(email, input.Phone, string(hash), input.DisplayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.merchantRepo.Create(ctx, m); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to create merchant", "error", err)
		return nil, errors.NewInternalError("failed to create merchant")
	}

	cr, err := creator.NewCreator(m.ID(), input.Username, input.DisplayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.creatorRepo.Create(ctx, cr); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username already taken")
		}
		uc.logger.Errorw("failed to create creator profile", "error", err)
		return nil, errors.NewInternalError("failed to create creator profile")
	}

	if err := uc.startPlatformSubscription(ctx, m.ID()); err != nil {
		// The account is usable without a platform subscription; the trial
		// sweep tolerates its absence.
		uc.logger.Warnw("failed to start platform subscription", "merchant_id", m.ID(), "error", err)
	}

	uc.logger.Infow("merchant registered", "merchant_sid", m.SID(), "creator_sid", cr.SID())
	return &RegisterOutput{MerchantSID: m.SID(), CreatorSID: cr.SID()}, nil
}

func (uc *RegisterMerchantUseCase) startPlatformSubscription(ctx context.Context, merchantID uint) error {
	now := time.Now().UTC()

	starter, err := uc.planRepo.GetByCode(ctx, platform.PlanCodeStarter)
	if err == nil && starter != nil && starter.TrialDays() > 0 {
		psub, err := platform.NewTrialSubscription(merchantID, starter, now)
		if err != nil {
			return err
		}
		return uc.platformRepo.Create(ctx, psub)
	}

	free, err := uc.planRepo.GetByCode(ctx, platform.PlanCodeFree)
	if err != nil {
		return err
	}
	if free == nil {
		return platform.ErrNoFreePlan
	}
	psub, err := platform.NewSubscription(merchantID, free.ID(), now, now.AddDate(100, 0, 0))
	if err != nil {
		return err
	}
	return uc.platformRepo.Create(ctx, psub)
}

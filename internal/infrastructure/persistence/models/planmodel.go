package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lipagate/lipagate/internal/shared/constants"
)

// PlanModel represents the database persistence model for platform plans.
// Features is a JSON object of capability flags.
type PlanModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: plan_xxx"`
	Code      string `gorm:"uniqueIndex;not null;size:32"`
	Name      string `gorm:"not null;size:255"`
	Features  datatypes.JSON
	TrialDays int    `gorm:"not null;default:0"`
	Amount    int64  `gorm:"not null;default:0"`
	Currency  string `gorm:"size:3"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}

// PlatformSubscriptionModel represents the database persistence model for
// merchant platform subscriptions.
type PlatformSubscriptionModel struct {
	ID                 uint      `gorm:"primarykey"`
	SID                string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: psub_xxx"`
	MerchantID         uint      `gorm:"uniqueIndex;not null"`
	PlanID             uint      `gorm:"not null;index:idx_plan_platform_sub"`
	Status             string    `gorm:"not null;size:20;index:idx_platform_sub_status"`
	CurrentPeriodStart time.Time `gorm:"not null"`
	CurrentPeriodEnd   time.Time `gorm:"not null"`
	TrialEndsAt        *time.Time `gorm:"index:idx_trial_ends"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (PlatformSubscriptionModel) TableName() string {
	return constants.TablePlatformSubscriptions
}

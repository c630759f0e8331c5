package models

import (
	"time"

	"github.com/lipagate/lipagate/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for customer
// subscriptions. Customers are identified by phone number; there is no
// customer account table. The notified_* columns are watermarks that make
// lifecycle notifications idempotent across sweep runs.
type SubscriptionModel struct {
	ID                 uint      `gorm:"primarykey"`
	SID                string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	MerchantID         uint      `gorm:"not null;index:idx_merchant_subscription"`
	CustomerPhone      string    `gorm:"not null;size:32;index:idx_phone_product,priority:1"`
	ProductID          uint      `gorm:"not null;index:idx_phone_product,priority:2"`
	Status             string    `gorm:"not null;size:20;index:idx_sub_status"`
	CurrentPeriodStart time.Time `gorm:"not null"`
	CurrentPeriodEnd   time.Time `gorm:"not null;index:idx_period_end"`
	ExpiredAt          *time.Time
	CancelledAt        *time.Time
	CancelReason       *string `gorm:"size:500"`
	NotifiedExpiringAt *time.Time
	NotifiedExpiredAt  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

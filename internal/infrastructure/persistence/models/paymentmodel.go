package models

import (
	"time"

	"github.com/lipagate/lipagate/internal/shared/constants"
)

// PaymentModel represents the database persistence model for off-platform
// payment claims. Reference is the short code the customer quotes in the
// mobile-money or bank narration.
type PaymentModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: pay_xxx"`
	Reference     string `gorm:"uniqueIndex;not null;size:20"`
	MerchantID    uint   `gorm:"not null;index:idx_merchant_payment"`
	CustomerPhone string `gorm:"not null;size:32;index:idx_payment_phone"`
	ProductID     uint   `gorm:"not null"`
	PriceID       uint   `gorm:"not null"`
	Amount        int64  `gorm:"not null"`
	Currency      string `gorm:"not null;size:3"`
	Channel       string `gorm:"not null;size:20"`
	Status        string `gorm:"not null;size:20;index:idx_payment_status"`
	ConfirmedBy   *uint
	ConfirmedAt   *time.Time
	FailureReason *string `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return constants.TablePayments
}

package models

import (
	"time"

	"github.com/lipagate/lipagate/internal/shared/constants"
)

// MerchantModel represents the database persistence model for merchant accounts.
// This is the anti-corruption layer between domain and database.
type MerchantModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: mch_xxx"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Phone        string `gorm:"size:32;index:idx_merchant_phone"`
	PasswordHash string `gorm:"not null;size:255"`
	DisplayName  string `gorm:"size:255"`
	Admin        bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (MerchantModel) TableName() string {
	return constants.TableMerchants
}

package models

import (
	"time"

	"github.com/lipagate/lipagate/internal/shared/constants"
)

// CreatorModel represents the database persistence model for creator profiles.
type CreatorModel struct {
	ID               uint   `gorm:"primarykey"`
	SID              string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: cr_xxx"`
	MerchantID       uint   `gorm:"uniqueIndex;not null"`
	Username         string `gorm:"uniqueIndex;not null;size:64"`
	DisplayName      string `gorm:"size:255"`
	Bio              string `gorm:"size:1000"`
	CommunityPremium bool   `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (CreatorModel) TableName() string {
	return constants.TableCreators
}

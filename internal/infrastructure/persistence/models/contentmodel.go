package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lipagate/lipagate/internal/shared/constants"
)

// ContentModel represents the database persistence model for content items.
// ProductIDs is a JSON array of the product IDs whose subscriptions unlock
// this item.
type ContentModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: cnt_xxx"`
	CreatorID     uint   `gorm:"not null;uniqueIndex:idx_creator_slug,priority:1"`
	Kind          string `gorm:"not null;size:20"`
	Title         string `gorm:"not null;size:500"`
	Slug          string `gorm:"not null;size:255;uniqueIndex:idx_creator_slug,priority:2"`
	Body          string `gorm:"type:text"`
	BodyHTML      string `gorm:"type:text"`
	Visibility    string `gorm:"not null;size:20;index:idx_visibility"`
	Status        string `gorm:"not null;size:20;index:idx_content_status"`
	ProductIDs    datatypes.JSON
	ViewCount     uint64 `gorm:"not null;default:0"`
	DownloadCount uint64 `gorm:"not null;default:0"`
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (ContentModel) TableName() string {
	return constants.TableContents
}

// ContentViewModel is the append-only log of granted views.
type ContentViewModel struct {
	ID          uint      `gorm:"primarykey"`
	ContentID   uint      `gorm:"not null;index:idx_content_view"`
	ViewerPhone string    `gorm:"size:32;index:idx_viewer_phone"`
	ViewerID    *uint     `gorm:"index:idx_viewer_id"`
	ViewedAt    time.Time `gorm:"not null;index:idx_viewed_at"`
}

// TableName specifies the table name for GORM
func (ContentViewModel) TableName() string {
	return constants.TableContentViews
}

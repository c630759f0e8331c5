package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/domain/content"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/mappers"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/db"
)

type ContentRepository struct {
	db     *gorm.DB
	mapper mappers.ContentMapper
}

func NewContentRepository(gormDB *gorm.DB) *ContentRepository {
	return &ContentRepository{db: gormDB, mapper: mappers.NewContentMapper()}
}

func (r *ContentRepository) Create(ctx context.Context, item *content.Content) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		return fmt.Errorf("failed to map content: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}

	return item.SetID(model.ID)
}

func (r *ContentRepository) Update(ctx context.Context, item *content.Content) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		return fmt.Errorf("failed to map content: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":        model.Title,
			"body":         model.Body,
			"body_html":    model.BodyHTML,
			"visibility":   model.Visibility,
			"status":       model.Status,
			"product_ids":  model.ProductIDs,
			"published_at": model.PublishedAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update content: %w", result.Error)
	}
	return nil
}

func (r *ContentRepository) GetByID(ctx context.Context, id uint) (*content.Content, error) {
	var model models.ContentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ContentRepository) GetBySID(ctx context.Context, sid string) (*content.Content, error) {
	var model models.ContentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ContentRepository) GetBySlug(ctx context.Context, creatorID uint, slug string) (*content.Content, error) {
	var model models.ContentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("creator_id = ? AND slug = ?", creatorID, slug).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content by slug: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ContentRepository) ListByCreator(ctx context.Context, creatorID uint, page, pageSize int) ([]*content.Content, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ContentModel{}).
		Where("creator_id = ?", creatorID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count content: %w", err)
	}

	var modelList []*models.ContentModel
	if err := tx.
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list content: %w", err)
	}

	items, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// IncrementViewCount bumps the counter and appends the view log in one
// transaction so a granted view never double-counts or half-records.
func (r *ContentRepository) IncrementViewCount(ctx context.Context, contentID uint, log content.ViewLog) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ContentModel{}).
			Where("id = ?", contentID).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to increment view count: %w", err)
		}

		viewModel := &models.ContentViewModel{
			ContentID:   log.ContentID,
			ViewerPhone: log.ViewerPhone,
			ViewerID:    log.ViewerID,
			ViewedAt:    log.ViewedAt,
		}
		if err := tx.Create(viewModel).Error; err != nil {
			return fmt.Errorf("failed to record view: %w", err)
		}
		return nil
	})
}

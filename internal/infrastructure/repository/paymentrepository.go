package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/domain/payment"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/mappers"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/db"
)

type PaymentRepository struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
}

func NewPaymentRepository(gormDB *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: gormDB, mapper: mappers.NewPaymentMapper()}
}

func (r *PaymentRepository) Create(ctx context.Context, pay *payment.Payment) error {
	model, err := r.mapper.ToModel(pay)
	if err != nil {
		return fmt.Errorf("failed to map payment: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return pay.SetID(model.ID)
}

func (r *PaymentRepository) Update(ctx context.Context, pay *payment.Payment) error {
	model, err := r.mapper.ToModel(pay)
	if err != nil {
		return fmt.Errorf("failed to map payment: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"confirmed_by":   model.ConfirmedBy,
			"confirmed_at":   model.ConfirmedAt,
			"failure_reason": model.FailureReason,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepository) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("reference = ?", reference).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment by reference: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepository) ListByMerchant(ctx context.Context, merchantID uint, status string, page, pageSize int) ([]*payment.Payment, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.PaymentModel{}).Where("merchant_id = ?", merchantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	listQuery := tx.Where("merchant_id = ?", merchantID)
	if status != "" {
		listQuery = listQuery.Where("status = ?", status)
	}

	var modelList []*models.PaymentModel
	if err := listQuery.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	payments, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

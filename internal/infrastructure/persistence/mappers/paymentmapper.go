package mappers

import (
	"fmt"

	"github.com/lipagate/lipagate/internal/domain/payment"
	vo "github.com/lipagate/lipagate/internal/domain/payment/valueobjects"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/mapper"
)

type PaymentMapper interface {
	ToEntity(model *models.PaymentModel) (*payment.Payment, error)
	ToModel(entity *payment.Payment) (*models.PaymentModel, error)
	ToEntities(models []*models.PaymentModel) ([]*payment.Payment, error)
}

type PaymentMapperImpl struct{}

func NewPaymentMapper() PaymentMapper {
	return &PaymentMapperImpl{}
}

func (m *PaymentMapperImpl) ToEntity(model *models.PaymentModel) (*payment.Payment, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.PaymentStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid payment status: %s", model.Status)
	}

	entity, err := payment.Reconstruct(payment.ReconstructParams{
		ID:            model.ID,
		SID:           model.SID,
		Reference:     model.Reference,
		MerchantID:    model.MerchantID,
		CustomerPhone: model.CustomerPhone,
		ProductID:     model.ProductID,
		PriceID:       model.PriceID,
		Amount:        model.Amount,
		Currency:      model.Currency,
		Channel:       vo.PaymentChannel(model.Channel),
		Status:        status,
		ConfirmedBy:   model.ConfirmedBy,
		ConfirmedAt:   model.ConfirmedAt,
		FailureReason: model.FailureReason,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct payment entity: %w", err)
	}
	return entity, nil
}

func (m *PaymentMapperImpl) ToModel(entity *payment.Payment) (*models.PaymentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PaymentModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		Reference:     entity.Reference(),
		MerchantID:    entity.MerchantID(),
		CustomerPhone: entity.CustomerPhone(),
		ProductID:     entity.ProductID(),
		PriceID:       entity.PriceID(),
		Amount:        entity.Amount(),
		Currency:      entity.Currency(),
		Channel:       string(entity.Channel()),
		Status:        entity.Status().String(),
		ConfirmedBy:   entity.ConfirmedBy(),
		ConfirmedAt:   entity.ConfirmedAt(),
		FailureReason: entity.FailureReason(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *PaymentMapperImpl) ToEntities(modelList []*models.PaymentModel) ([]*payment.Payment, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PaymentModel) uint { return model.ID })
}

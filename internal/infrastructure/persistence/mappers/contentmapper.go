package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/lipagate/lipagate/internal/domain/content"
	vo "github.com/lipagate/lipagate/internal/domain/content/valueobjects"
	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/mapper"
)

type ContentMapper interface {
	ToEntity(model *models.ContentModel) (*content.Content, error)
	ToModel(entity *content.Content) (*models.ContentModel, error)
	ToEntities(models []*models.ContentModel) ([]*content.Content, error)
}

type ContentMapperImpl struct{}

func NewContentMapper() ContentMapper {
	return &ContentMapperImpl{}
}

func (m *ContentMapperImpl) ToEntity(model *models.ContentModel) (*content.Content, error) {
	if model == nil {
		return nil, nil
	}

	var productIDs []uint
	if model.ProductIDs != nil {
		if err := json.Unmarshal(model.ProductIDs, &productIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product IDs: %w", err)
		}
	}

	entity, err := content.Reconstruct(content.ReconstructParams{
		ID:            model.ID,
		SID:           model.SID,
		CreatorID:     model.CreatorID,
		Kind:          vo.ContentKind(model.Kind),
		Title:         model.Title,
		Slug:          model.Slug,
		Body:          model.Body,
		BodyHTML:      model.BodyHTML,
		Visibility:    vo.Visibility(model.Visibility),
		Status:        vo.ContentStatus(model.Status),
		ProductIDs:    productIDs,
		ViewCount:     model.ViewCount,
		DownloadCount: model.DownloadCount,
		PublishedAt:   model.PublishedAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct content entity: %w", err)
	}
	return entity, nil
}

func (m *ContentMapperImpl) ToModel(entity *content.Content) (*models.ContentModel, error) {
	if entity == nil {
		return nil, nil
	}

	var productIDsJSON datatypes.JSON
	if ids := entity.ProductIDs(); len(ids) > 0 {
		data, err := json.Marshal(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal product IDs: %w", err)
		}
		productIDsJSON = data
	}

	return &models.ContentModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		CreatorID:     entity.CreatorID(),
		Kind:          string(entity.Kind()),
		Title:         entity.Title(),
		Slug:          entity.Slug(),
		Body:          entity.Body(),
		BodyHTML:      entity.BodyHTML(),
		Visibility:    string(entity.Visibility()),
		Status:        string(entity.Status()),
		ProductIDs:    productIDsJSON,
		ViewCount:     entity.ViewCount(),
		DownloadCount: entity.DownloadCount(),
		PublishedAt:   entity.PublishedAt(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *ContentMapperImpl) ToEntities(modelList []*models.ContentModel) ([]*content.Content, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ContentModel) uint { return model.ID })
}

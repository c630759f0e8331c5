package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/application/content/usecases"
	"github.com/lipagate/lipagate/internal/domain/content"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

type ContentHandler struct {
	createUC  *usecases.CreateContentUseCase
	publishUC *usecases.PublishContentUseCase
	listUC    *usecases.ListContentUseCase
	logger    logger.Interface
}

func NewContentHandler(
	createUC *usecases.CreateContentUseCase,
	publishUC *usecases.PublishContentUseCase,
	listUC *usecases.ListContentUseCase,
) *ContentHandler {
	return &ContentHandler{
		createUC:  createUC,
		publishUC: publishUC,
		listUC:    listUC,
		logger:    logger.NewLogger(),
	}
}

type CreateContentRequest struct {
	Kind       string   `json:"kind" binding:"required,oneof=post file video"`
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug" binding:"required"`
	Body       string   `json:"body"`
	Visibility string   `json:"visibility" binding:"required,oneof=free premium"`
	ProductIDs []string `json:"product_ids"`
}

type contentResponse struct {
	ContentID   string     `json:"content_id"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Visibility  string     `json:"visibility"`
	Status      string     `json:"status"`
	ViewCount   uint64     `json:"view_count"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toContentResponse(item *content.Content) contentResponse {
	return contentResponse{
		ContentID:   item.SID(),
		Kind:        item.Kind().String(),
		Title:       item.Title(),
		Slug:        item.Slug(),
		Visibility:  item.Visibility().String(),
		Status:      item.Status().String(),
		ViewCount:   item.ViewCount(),
		PublishedAt: item.PublishedAt(),
		CreatedAt:   item.CreatedAt(),
	}
}

// Create adds a draft content item under the merchant's creator profile.
func (h *ContentHandler) Create(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	item, err := h.createUC.Execute(c.Request.Context(), usecases.CreateContentInput{
		MerchantID:  merchantID,
		Kind:        req.Kind,
		Title:       req.Title,
		Slug:        req.Slug,
		Body:        req.Body,
		Visibility:  req.Visibility,
		ProductSIDs: req.ProductIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toContentResponse(item), "Content created")
}

// Publish makes a draft visible to the access evaluator.
func (h *ContentHandler) Publish(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	sid := c.Param("sid")
	if sid == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Content ID is required")
		return
	}

	item, err := h.publishUC.Execute(c.Request.Context(), merchantID, sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Content published", toContentResponse(item))
}

// List pages through the merchant's content library.
func (h *ContentHandler) List(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, total, err := h.listUC.Execute(c.Request.Context(), merchantID, page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]contentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toContentResponse(item))
	}

	utils.ListSuccessResponse(c, out, total, page, pageSize)
}

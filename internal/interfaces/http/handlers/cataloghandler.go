package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/application/catalog/usecases"
	"github.com/lipagate/lipagate/internal/domain/catalog"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

type CatalogHandler struct {
	createProductUC *usecases.CreateProductUseCase
	createPriceUC   *usecases.CreatePriceUseCase
	listProductsUC  *usecases.ListProductsUseCase
	logger          logger.Interface
}

func NewCatalogHandler(
	createProductUC *usecases.CreateProductUseCase,
	createPriceUC *usecases.CreatePriceUseCase,
	listProductsUC *usecases.ListProductsUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		createProductUC: createProductUC,
		createPriceUC:   createPriceUC,
		listProductsUC:  listProductsUC,
		logger:          logger.NewLogger(),
	}
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreatePriceRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"required,len=3"`
	Interval string `json:"interval" binding:"required,oneof=monthly quarterly yearly"`
}

type priceResponse struct {
	PriceID  string `json:"price_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Interval string `json:"interval"`
	Active   bool   `json:"active"`
}

type productResponse struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active"`
	Prices      []priceResponse `json:"prices,omitempty"`
}

func toProductResponse(product *catalog.Product, prices []*catalog.Price) productResponse {
	resp := productResponse{
		ProductID:   product.SID(),
		Name:        product.Name(),
		Description: product.Description(),
		Active:      product.IsActive(),
	}
	for _, price := range prices {
		resp.Prices = append(resp.Prices, priceResponse{
			PriceID:  price.SID(),
			Amount:   price.Amount(),
			Currency: price.Currency(),
			Interval: string(price.Interval()),
			Active:   price.IsActive(),
		})
	}
	return resp
}

// CreateProduct adds a product to the merchant's catalog.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	product, err := h.createProductUC.Execute(c.Request.Context(), usecases.CreateProductInput{
		MerchantID:  merchantID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toProductResponse(product, nil), "Product created")
}

// CreatePrice attaches a billing price to one of the merchant's products.
func (h *CatalogHandler) CreatePrice(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	productSID := c.Param("sid")
	if productSID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Product ID is required")
		return
	}

	var req CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	price, err := h.createPriceUC.Execute(c.Request.Context(), usecases.CreatePriceInput{
		MerchantID: merchantID,
		ProductSID: productSID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Interval:   req.Interval,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, priceResponse{
		PriceID:  price.SID(),
		Amount:   price.Amount(),
		Currency: price.Currency(),
		Interval: string(price.Interval()),
		Active:   price.IsActive(),
	}, "Price created")
}

// ListProducts returns the merchant's catalog with prices attached.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	activeOnly := c.Query("active") == "true"

	products, err := h.listProductsUC.Execute(c.Request.Context(), merchantID, activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, entry := range products {
		out = append(out, toProductResponse(entry.Product, entry.Prices))
	}

	utils.SuccessResponse(c, http.StatusOK, "Products retrieved", out)
}

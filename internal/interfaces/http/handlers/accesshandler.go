package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/application/access/usecases"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

// AccessHandler exposes the access decision endpoints. They are public:
// authentication is optional and only sharpens the viewer identity.
type AccessHandler struct {
	contentAccessUC   *usecases.EvaluateContentAccessUseCase
	communityAccessUC *usecases.EvaluateCommunityAccessUseCase
	logger            logger.Interface
}

func NewAccessHandler(
	contentAccessUC *usecases.EvaluateContentAccessUseCase,
	communityAccessUC *usecases.EvaluateCommunityAccessUseCase,
) *AccessHandler {
	return &AccessHandler{
		contentAccessUC:   contentAccessUC,
		communityAccessUC: communityAccessUC,
		logger:            logger.NewLogger(),
	}
}

// CheckContentAccess evaluates whether the viewer may see a content item.
// The phone query parameter, when present, takes precedence over the phone
// on the viewer's account.
func (h *AccessHandler) CheckContentAccess(c *gin.Context) {
	sid := c.Param("sid")
	if sid == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Content ID is required")
		return
	}

	query := usecases.ContentAccessQuery{
		ContentSID:  sid,
		ViewerPhone: c.Query("phone"),
		RequestURL:  c.Request.URL.RequestURI(),
	}
	if viewerID, ok := middleware.MerchantID(c); ok {
		query.ViewerUserID = &viewerID
	}

	result, err := h.contentAccessUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Access evaluated", result)
}

// CheckCommunityAccess evaluates whether the viewer may enter a creator's
// community.
func (h *AccessHandler) CheckCommunityAccess(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Username is required")
		return
	}

	query := usecases.CommunityAccessQuery{
		Username:    username,
		ViewerPhone: c.Query("phone"),
		RequestURL:  c.Request.URL.RequestURI(),
	}
	if viewerID, ok := middleware.MerchantID(c); ok {
		query.ViewerUserID = &viewerID
	}

	result, err := h.communityAccessUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Access evaluated", result)
}

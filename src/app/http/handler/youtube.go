package handler

import (
	"github.com/gin-gonic/gin"

	"kioku/src/app/http/dto"
	"kioku/src/app/http/response"
	"kioku/src/app/middleware"
	"kioku/src/core/usecase"
)

// YoutubeHandler handles youtube endpoints.
type YoutubeHandler struct {
	youtubeService *usecase.YoutubeService
}

func NewYoutubeHandler(youtubeService *usecase.YoutubeService) *YoutubeHandler {
	return &YoutubeHandler{youtubeService: youtubeService}
}

// Create handles POST /v1/youtubes.
func (h *YoutubeHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateYoutubeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.youtubeService.Create(c.Request.Context(), usecase.CreateYoutubeCmd{ID: req.ID})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.Created(c, gin.H{"id": res.ID})
}

package handler

import (
	"github.com/gin-gonic/gin"

	"kioku/src/app/http/response"
	"kioku/src/app/middleware"
	"kioku/src/core/usecase"
)

// KiokuHandler serves the aggregated content feed.
type KiokuHandler struct {
	kiokuService *usecase.KiokuService
}

func NewKiokuHandler(kiokuService *usecase.KiokuService) *KiokuHandler {
	return &KiokuHandler{kiokuService: kiokuService}
}

// Get handles GET /v1/kioku.
func (h *KiokuHandler) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	items, err := h.kiokuService.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.OK(c, items)
}

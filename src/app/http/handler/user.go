package handler

import (
	"github.com/gin-gonic/gin"

	"kioku/src/app/http/dto"
	"kioku/src/app/http/response"
	"kioku/src/app/middleware"
	"kioku/src/core/usecase"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me handles GET /v1/users/me. The profile is created on first sight from
// the identity headers.
func (h *UserHandler) Me(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	res, err := h.userService.Get(c.Request.Context(), usecase.GetUserQuery{
		ID:    middleware.GetUserID(c),
		Email: middleware.GetUserEmail(c),
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.OK(c, res.User)
}

// Update handles PUT /v1/users/me.
func (h *UserHandler) Update(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	err := h.userService.Update(c.Request.Context(), usecase.UpdateUserCmd{
		ID:      middleware.GetUserID(c),
		Name:    req.Name,
		ImgURL:  req.ImgURL,
		Discord: req.Discord,
		Github:  req.Github,
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.NoContent(c)
}

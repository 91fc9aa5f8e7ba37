// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"kioku/src/app/http/dto"
	"kioku/src/app/http/response"
	"kioku/src/app/middleware"
	"kioku/src/core/domain"
	"kioku/src/core/ports"
	"kioku/src/core/usecase"
)

// DocHandler handles document endpoints.
type DocHandler struct {
	docService *usecase.DocService
}

func NewDocHandler(docService *usecase.DocService) *DocHandler {
	return &DocHandler{docService: docService}
}

// Create handles POST /v1/docs.
func (h *DocHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	res, err := h.docService.Create(c.Request.Context(), usecase.CreateDocCmd{
		Title:  req.Title,
		UserID: middleware.GetUserID(c),
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.Created(c, gin.H{"id": res.ID})
}

// Get handles GET /v1/docs/:doc_id. Anonymous callers get a 404 for
// documents that are not public, indistinguishable from a missing document.
func (h *DocHandler) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	res, err := h.docService.Get(c.Request.Context(), ports.GetDocQuery{ID: c.Param("doc_id")})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	if middleware.GetUserID(c) == "" && res.Doc.Status != string(domain.DocStatusPublic) {
		response.NotFound(c, "document not found", requestID)
		return
	}

	response.OK(c, res.Doc)
}

// Search handles GET /v1/docs. The optional statuses query parameter is a
// comma-separated status list, e.g. ?statuses=public,private. Anonymous
// callers are restricted to public documents regardless of the query.
func (h *DocHandler) Search(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var statuses []domain.DocStatus
	if middleware.GetUserID(c) == "" {
		statuses = []domain.DocStatus{domain.DocStatusPublic}
	} else if raw := c.Query("statuses"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, err := domain.NewDocStatus(strings.TrimSpace(part), "Doc.status")
			if err != nil {
				response.FromDomainError(c, err, requestID)
				return
			}
			statuses = append(statuses, status)
		}
	}

	res, err := h.docService.Search(c.Request.Context(), ports.SearchDocQuery{Statuses: statuses})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.OK(c, res.Docs)
}

// Update handles PUT /v1/docs/:doc_id.
func (h *DocHandler) Update(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.UpdateDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	err := h.docService.Update(c.Request.Context(), usecase.UpdateDocCmd{
		ID:           c.Param("doc_id"),
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Body:         req.Body,
		ThumbnailURL: req.ThumbnailURL,
		UserID:       middleware.GetUserID(c),
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.NoContent(c)
}

// Delete handles DELETE /v1/docs/:doc_id.
func (h *DocHandler) Delete(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	err := h.docService.Delete(c.Request.Context(), usecase.DeleteDocCmd{ID: c.Param("doc_id")})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.NoContent(c)
}

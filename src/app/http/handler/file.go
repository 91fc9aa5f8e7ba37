package handler

import (
	"github.com/gin-gonic/gin"

	"kioku/src/app/http/response"
	"kioku/src/app/middleware"
	"kioku/src/core/ports"
	"kioku/src/core/usecase"
)

// FileHandler handles file upload endpoints.
type FileHandler struct {
	systemService *usecase.SystemService
}

func NewFileHandler(systemService *usecase.SystemService) *FileHandler {
	return &FileHandler{systemService: systemService}
}

// Upload handles POST /v1/files. Expects a multipart form with a single
// "file" part and responds with the public URL of the stored object.
func (h *FileHandler) Upload(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file part", requestID)
		return
	}

	f, err := header.Open()
	if err != nil {
		response.BadRequest(c, "unreadable file part", requestID)
		return
	}
	defer f.Close()

	res, err := h.systemService.UploadFile(c.Request.Context(), ports.Upload{
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.Created(c, gin.H{"url": res.URL})
}

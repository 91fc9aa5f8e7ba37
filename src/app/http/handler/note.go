package handler

import (
	"regexp"

	"github.com/gin-gonic/gin"

	"kioku/src/app/http/dto"
	"kioku/src/app/http/response"
	"kioku/src/app/middleware"
	"kioku/src/core/usecase"
)

// noteURLPattern matches a note.com article URL and captures the author
// handle and the note id.
var noteURLPattern = regexp.MustCompile(`^https://note\.com/([^/]+)/n/([a-zA-Z0-9-]+)$`)

// NoteHandler handles note endpoints.
type NoteHandler struct {
	noteService *usecase.NoteService
}

func NewNoteHandler(noteService *usecase.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// Create handles POST /v1/notes. The author handle and note id come from
// the submitted article URL, not from the caller's identity.
func (h *NoteHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return
	}

	m := noteURLPattern.FindStringSubmatch(req.NoteURL)
	if m == nil {
		response.BadRequest(c, "note_url must be a note.com article URL", requestID)
		return
	}

	res, err := h.noteService.Create(c.Request.Context(), usecase.CreateNoteCmd{
		NoteID: m[2],
		UserID: m[1],
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.Created(c, gin.H{"id": res.ID})
}

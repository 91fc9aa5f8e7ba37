package dto

// CreateDocRequest is the payload for POST /v1/docs.
type CreateDocRequest struct {
	Title string `json:"title" binding:"required"`
}

// UpdateDocRequest is the payload for PUT /v1/docs/:doc_id.
type UpdateDocRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Status       string `json:"status" binding:"required"`
	Body         string `json:"body"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// CreateNoteRequest is the payload for POST /v1/notes. The note URL is the
// public article URL (https://note.com/<handle>/n/<id>); the author handle
// and note id are extracted from it.
type CreateNoteRequest struct {
	NoteURL string `json:"note_url" binding:"required"`
}

// CreateYoutubeRequest is the payload for POST /v1/youtubes.
type CreateYoutubeRequest struct {
	ID string `json:"id" binding:"required"`
}

// UpdateUserRequest is the payload for PUT /v1/users/me.
type UpdateUserRequest struct {
	Name    string `json:"name"`
	ImgURL  string `json:"img_url"`
	Discord string `json:"discord"`
	Github  string `json:"github"`
}

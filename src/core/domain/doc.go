package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// DocStatus is the visibility of a document.
type DocStatus string

const (
	DocStatusPublic  DocStatus = "public"
	DocStatusPrivate DocStatus = "private"
)

// AllDocStatuses lists every valid status, in presentation order.
var AllDocStatuses = []DocStatus{DocStatusPublic, DocStatusPrivate}

// NewDocStatus validates a status string.
func NewDocStatus(raw string, field ...string) (DocStatus, error) {
	switch DocStatus(raw) {
	case DocStatusPublic:
		return DocStatusPublic, nil
	case DocStatusPrivate:
		return DocStatusPrivate, nil
	}
	return "", NewValidationError(fieldName("DocStatus", field), "must be one of: public, private")
}

// Doc is a rich-text document aggregate. Body is the serialized editor
// document; this layer treats it as opaque and never parses it for validity.
type Doc struct {
	ID           DocID
	Title        String1To100
	Description  *String1To100
	Status       DocStatus
	Body         string
	ThumbnailURL *URL
	UserID       UserID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// docNode mirrors the editor's document node shape, used only to build the
// initial body skeleton for a fresh document.
type docNode struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []docNode      `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
}

func initialDocBody(title String1To100) string {
	skeleton := docNode{
		Type: "doc",
		Content: []docNode{
			{
				Type:    "heading",
				Attrs:   map[string]any{"level": 1},
				Content: []docNode{{Type: "text", Text: strings.TrimSpace(title.String())}},
			},
			{Type: "paragraph"},
		},
	}
	b, err := json.Marshal(skeleton)
	if err != nil {
		// Marshalling a static node tree cannot fail.
		return `{"type":"doc"}`
	}
	return string(b)
}

// NewDoc creates a Doc from a validated title.
//
// Logic rules:
//   - status starts private, description and thumbnail unset
//   - the title becomes a level-1 heading in the initial body, followed by
//     an empty paragraph
//   - createdAt and updatedAt are both now
func NewDoc(title String1To100, userID UserID, now time.Time) Doc {
	return Doc{
		ID:           CreateDocID(),
		Title:        title,
		Description:  nil,
		Status:       DocStatusPrivate,
		Body:         initialDocBody(title),
		ThumbnailURL: nil,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UpdatedDoc replaces the mutable fields of a Doc and bumps updatedAt.
// ID, author and createdAt carry over unchanged.
func UpdatedDoc(doc Doc, title String1To100, description *String1To100, status DocStatus, body string, thumbnailURL *URL, now time.Time) Doc {
	doc.Title = title
	doc.Description = description
	doc.Status = status
	doc.Body = body
	doc.ThumbnailURL = thumbnailURL
	doc.UpdatedAt = now
	return doc
}

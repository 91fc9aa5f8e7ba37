package domain

import "time"

// NoteInfo is the metadata of a note.com article, fetched from the OGP
// endpoint rather than supplied by the author.
type NoteInfo struct {
	Title        string
	NoteUserName string
	URL          URL
	ThumbnailURL *URL
}

// Note is a tracked external article aggregate.
type Note struct {
	ID        NoteID
	Info      NoteInfo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote wraps externally fetched info into a Note.
// createdAt and updatedAt are both now.
func NewNote(id NoteID, info NoteInfo, now time.Time) Note {
	return Note{
		ID:        id,
		Info:      info,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

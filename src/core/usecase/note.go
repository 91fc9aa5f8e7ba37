package usecase

import (
	"context"
	"log/slog"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
)

// NoteService handles the note workflows.
type NoteService struct {
	repo  ports.NoteRepository
	notes ports.NotePort
	clock ports.TimePort
	log   *slog.Logger
}

func NewNoteService(repo ports.NoteRepository, notes ports.NotePort, clock ports.TimePort, log *slog.Logger) *NoteService {
	return &NoteService{repo: repo, notes: notes, clock: clock, log: log}
}

// CreateNoteCmd tracks an external note.com article. UserID is the note.com
// author handle the article belongs to, used for the metadata lookup.
type CreateNoteCmd struct {
	NoteID string
	UserID string
}

// CreateNoteResult reports the id of the tracked note.
type CreateNoteResult struct {
	ID string
}

// Create validates the id, fetches the article metadata from the OGP
// endpoint, and persists the note. A fetch failure propagates unchanged and
// nothing is written.
func (s *NoteService) Create(ctx context.Context, cmd CreateNoteCmd) (*CreateNoteResult, error) {
	id, err := domain.NewNoteID(cmd.NoteID, "Note.id")
	if err != nil {
		return nil, err
	}

	info, err := s.notes.FetchInfo(ctx, id, cmd.UserID)
	if err != nil {
		return nil, err
	}
	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}

	note := domain.NewNote(id, *info, now)
	if err := s.repo.Upsert(ctx, note); err != nil {
		return nil, err
	}

	s.log.Info("note created", "note_id", id.String(), "title", info.Title)
	return &CreateNoteResult{ID: id.String()}, nil
}

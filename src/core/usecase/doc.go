// Package usecase contains the workflow orchestrators: one service per
// aggregate, each composing validators, pure domain logic, and ports into
// full use cases. Every method validates its inputs, applies effects through
// ports, and returns a result or a typed domain error; failures short-circuit
// and nothing is persisted on a partially valid command.
package usecase

import (
	"context"
	"log/slog"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
)

// DocService handles the document workflows.
type DocService struct {
	repo  ports.DocRepository
	clock ports.TimePort
	log   *slog.Logger
}

func NewDocService(repo ports.DocRepository, clock ports.TimePort, log *slog.Logger) *DocService {
	return &DocService{repo: repo, clock: clock, log: log}
}

// CreateDocCmd creates a new document.
type CreateDocCmd struct {
	Title  string
	UserID string
}

// CreateDocResult reports the id of the created document.
type CreateDocResult struct {
	ID string
}

// Create validates the command, builds a fresh private document with the
// title as its initial heading, and persists it.
func (s *DocService) Create(ctx context.Context, cmd CreateDocCmd) (*CreateDocResult, error) {
	title, err := domain.NewString1To100(cmd.Title, "Doc.title")
	if err != nil {
		return nil, err
	}
	userID, err := domain.NewUserID(cmd.UserID, "Doc.userId")
	if err != nil {
		return nil, err
	}
	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}

	doc := domain.NewDoc(title, userID, now)
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return nil, err
	}

	s.log.Info("doc created", "doc_id", doc.ID.String(), "user_id", userID.String())
	return &CreateDocResult{ID: doc.ID.String()}, nil
}

// UpdateDocCmd replaces the mutable fields of an existing document.
type UpdateDocCmd struct {
	ID           string
	Title        string
	Description  string
	Status       string
	Body         string
	ThumbnailURL string
	UserID       string
}

// Update validates every field of the command, reads the existing document,
// and persists the updated aggregate. Either the whole command applies or
// nothing does.
func (s *DocService) Update(ctx context.Context, cmd UpdateDocCmd) error {
	id, err := domain.NewDocID(cmd.ID, "Doc.id")
	if err != nil {
		return err
	}
	title, err := domain.NewString1To100(cmd.Title, "Doc.title")
	if err != nil {
		return err
	}
	description, err := domain.NewString1To100OrNone(cmd.Description, "Doc.description")
	if err != nil {
		return err
	}
	status, err := domain.NewDocStatus(cmd.Status, "Doc.status")
	if err != nil {
		return err
	}
	thumbnailURL, err := domain.NewURLOrNone(cmd.ThumbnailURL, "Doc.thumbnailUrl")
	if err != nil {
		return err
	}
	if _, err := domain.NewUserID(cmd.UserID, "Doc.userId"); err != nil {
		return err
	}

	doc, err := s.repo.Read(ctx, id)
	if err != nil {
		return err
	}
	now, err := s.clock.Now(ctx)
	if err != nil {
		return err
	}

	updated := domain.UpdatedDoc(*doc, title, description, status, cmd.Body, thumbnailURL, now)
	if err := s.repo.Upsert(ctx, updated); err != nil {
		return err
	}

	s.log.Info("doc updated", "doc_id", id.String(), "status", string(status))
	return nil
}

// DeleteDocCmd removes a document.
type DeleteDocCmd struct {
	ID string
}

// Delete reads the document to confirm it exists, then removes it.
func (s *DocService) Delete(ctx context.Context, cmd DeleteDocCmd) error {
	id, err := domain.NewDocID(cmd.ID, "Doc.id")
	if err != nil {
		return err
	}
	doc, err := s.repo.Read(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, *doc); err != nil {
		return err
	}

	s.log.Info("doc deleted", "doc_id", id.String())
	return nil
}

// GetDocResult wraps the document read model.
type GetDocResult struct {
	Doc ports.DocDto
}

// Get is a thin pass-through to the repository read model.
func (s *DocService) Get(ctx context.Context, q ports.GetDocQuery) (*GetDocResult, error) {
	dto, err := s.repo.Get(ctx, q)
	if err != nil {
		return nil, err
	}
	return &GetDocResult{Doc: *dto}, nil
}

// SearchDocResult wraps the document list read model.
type SearchDocResult struct {
	Docs []ports.DocInfo
}

// Search is a thin pass-through to the repository read model.
func (s *DocService) Search(ctx context.Context, q ports.SearchDocQuery) (*SearchDocResult, error) {
	infos, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return &SearchDocResult{Docs: infos}, nil
}

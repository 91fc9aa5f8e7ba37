// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"
	"time"

	"kioku/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// DocDto is the read-model shape of a full document.
type DocDto struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Body         string    `json:"body"`
	ThumbnailURL string    `json:"thumbnail_url"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DocInfo is the read-model shape of a document in list views. It carries
// the short slug used in public routes but not the body.
type DocInfo struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetDocQuery selects one document by id.
type GetDocQuery struct {
	ID string
}

// SearchDocQuery filters the document list. An empty status list means no
// status filter.
type SearchDocQuery struct {
	Statuses []domain.DocStatus
}

// DocRepository persists Doc aggregates and serves their read models.
type DocRepository interface {
	Repository

	Upsert(ctx context.Context, docs ...domain.Doc) error
	// Read returns the aggregate by id, or a not-found error.
	Read(ctx context.Context, id domain.DocID) (*domain.Doc, error)
	Delete(ctx context.Context, docs ...domain.Doc) error

	Get(ctx context.Context, q GetDocQuery) (*DocDto, error)
	Search(ctx context.Context, q SearchDocQuery) ([]DocInfo, error)
}

// NoteRepository persists Note aggregates.
type NoteRepository interface {
	Repository

	Upsert(ctx context.Context, notes ...domain.Note) error
	Read(ctx context.Context, id domain.NoteID) (*domain.Note, error)
	Delete(ctx context.Context, notes ...domain.Note) error
}

// YoutubeRepository persists Youtube aggregates.
type YoutubeRepository interface {
	Repository

	Upsert(ctx context.Context, videos ...domain.Youtube) error
	Read(ctx context.Context, id domain.YoutubeID) (*domain.Youtube, error)
	Delete(ctx context.Context, videos ...domain.Youtube) error
}

// UserDto is the read-model shape of a user profile.
type UserDto struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	ImgURL  string `json:"img_url"`
	Discord string `json:"discord"`
	Github  string `json:"github"`
}

// UserRepository persists User aggregates.
type UserRepository interface {
	Repository

	Upsert(ctx context.Context, users ...domain.User) error
	Read(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// Per-source feed read models. Each returns already-projected kioku entries
// for its content source; the kioku workflow merges them.

// DocKiokuSource lists feed entries backed by documents.
type DocKiokuSource interface {
	GetAll(ctx context.Context) ([]domain.Kioku, error)
}

// NoteKiokuSource lists feed entries backed by notes.
type NoteKiokuSource interface {
	GetAll(ctx context.Context) ([]domain.Kioku, error)
}

// YoutubeKiokuSource lists feed entries backed by videos.
type YoutubeKiokuSource interface {
	GetAll(ctx context.Context) ([]domain.Kioku, error)
}

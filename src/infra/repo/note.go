package repo

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"kioku/src/core/domain"
	"kioku/src/infra/db"
)

// NoteRepository implements ports.NoteRepository and ports.NoteKiokuSource
// using pgx.
type NoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewNoteRepository constructs a note repository backed by Postgres.
func NewNoteRepository(pg *db.Postgres, log *slog.Logger) *NoteRepository {
	return &NoteRepository{pool: pg.Pool, log: log}
}

func (r *NoteRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

type noteRow struct {
	ID           string
	Title        string
	NoteUserName string
	URL          string
	ThumbnailURL string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toNoteRow(n domain.Note) noteRow {
	var thumbnailURL string
	if n.Info.ThumbnailURL != nil {
		thumbnailURL = n.Info.ThumbnailURL.String()
	}
	return noteRow{
		ID:           n.ID.String(),
		Title:        n.Info.Title,
		NoteUserName: n.Info.NoteUserName,
		URL:          n.Info.URL.String(),
		ThumbnailURL: thumbnailURL,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func (row noteRow) toDomain() domain.Note {
	var thumbnailURL *domain.URL
	if row.ThumbnailURL != "" {
		u := domain.URL(row.ThumbnailURL)
		thumbnailURL = &u
	}
	return domain.Note{
		ID: domain.NoteID(row.ID),
		Info: domain.NoteInfo{
			Title:        row.Title,
			NoteUserName: row.NoteUserName,
			URL:          domain.URL(row.URL),
			ThumbnailURL: thumbnailURL,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func (r *NoteRepository) Upsert(ctx context.Context, notes ...domain.Note) error {
	if len(notes) == 0 {
		return nil
	}
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID.String())
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapDB("note", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM note WHERE note_id = ANY($1)`, ids); err != nil {
		return wrapDB("note", err)
	}
	const q = `
		INSERT INTO note (note_id, title, note_user_name, url, thumbnail_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, n := range notes {
		row := toNoteRow(n)
		if _, err := tx.Exec(ctx, q,
			row.ID, row.Title, row.NoteUserName, row.URL, row.ThumbnailURL, row.CreatedAt, row.UpdatedAt,
		); err != nil {
			return wrapDB("note", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapDB("note", err)
	}
	return nil
}

func (r *NoteRepository) Read(ctx context.Context, id domain.NoteID) (*domain.Note, error) {
	const q = `
		SELECT note_id, title, note_user_name, url, thumbnail_url, created_at, updated_at
		FROM note
		WHERE note_id = $1
	`
	var row noteRow
	if err := r.pool.QueryRow(ctx, q, id.String()).Scan(
		&row.ID, &row.Title, &row.NoteUserName, &row.URL, &row.ThumbnailURL, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, wrapDB("note", err)
	}
	note := row.toDomain()
	return &note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, notes ...domain.Note) error {
	if len(notes) == 0 {
		return nil
	}
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID.String())
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM note WHERE note_id = ANY($1)`, ids); err != nil {
		return wrapDB("note", err)
	}
	return nil
}

// GetAll lists notes as feed entries.
func (r *NoteRepository) GetAll(ctx context.Context) ([]domain.Kioku, error) {
	const q = `
		SELECT note_id, title, note_user_name, url, thumbnail_url, created_at
		FROM note
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, wrapDB("note", err)
	}
	defer rows.Close()

	kiokus := []domain.Kioku{}
	for rows.Next() {
		var k domain.NoteKioku
		var id string
		if err := rows.Scan(&id, &k.Title, &k.NoteUserName, &k.URL, &k.ThumbnailURL, &k.CreatedAt); err != nil {
			return nil, wrapDB("note", err)
		}
		noteID, err := domain.NewNoteID(id, "NoteKioku.id")
		if err != nil {
			return nil, err
		}
		k.ID = noteID
		kiokus = append(kiokus, k)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB("note", err)
	}
	return kiokus, nil
}

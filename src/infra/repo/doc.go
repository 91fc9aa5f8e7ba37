package repo

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
	"kioku/src/infra/db"
)

// DocRepository implements ports.DocRepository and ports.DocKiokuSource
// using pgx.
type DocRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewDocRepository constructs a document repository backed by Postgres.
func NewDocRepository(pg *db.Postgres, log *slog.Logger) *DocRepository {
	return &DocRepository{pool: pg.Pool, log: log}
}

func (r *DocRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// docRow mirrors the doc table.
type docRow struct {
	ID           string
	Title        string
	Description  string
	Status       string
	Body         string
	ThumbnailURL string
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toDocRow(d domain.Doc) docRow {
	var description, thumbnailURL string
	if d.Description != nil {
		description = d.Description.String()
	}
	if d.ThumbnailURL != nil {
		thumbnailURL = d.ThumbnailURL.String()
	}
	return docRow{
		ID:           d.ID.String(),
		Title:        d.Title.String(),
		Description:  description,
		Status:       string(d.Status),
		Body:         d.Body,
		ThumbnailURL: thumbnailURL,
		UserID:       d.UserID.String(),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// rowStatus collapses the legacy "draft" row value to private; the domain
// status enum is closed over public and private.
func rowStatus(raw string) domain.DocStatus {
	if raw == "public" {
		return domain.DocStatusPublic
	}
	return domain.DocStatusPrivate
}

func (row docRow) toDomain() domain.Doc {
	var description *domain.String1To100
	if row.Description != "" {
		d := domain.String1To100(row.Description)
		description = &d
	}
	var thumbnailURL *domain.URL
	if row.ThumbnailURL != "" {
		u := domain.URL(row.ThumbnailURL)
		thumbnailURL = &u
	}
	return domain.Doc{
		ID:           domain.DocID(row.ID),
		Title:        domain.String1To100(row.Title),
		Description:  description,
		Status:       rowStatus(row.Status),
		Body:         row.Body,
		ThumbnailURL: thumbnailURL,
		UserID:       domain.UserID(row.UserID),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *DocRepository) Upsert(ctx context.Context, docs ...domain.Doc) error {
	if len(docs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID.String())
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapDB("doc", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM doc WHERE doc_id = ANY($1)`, ids); err != nil {
		return wrapDB("doc", err)
	}
	const q = `
		INSERT INTO doc (doc_id, title, description, status, body, thumbnail_url, posted_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, d := range docs {
		row := toDocRow(d)
		if _, err := tx.Exec(ctx, q,
			row.ID, row.Title, row.Description, row.Status, row.Body,
			row.ThumbnailURL, row.UserID, row.CreatedAt, row.UpdatedAt,
		); err != nil {
			return wrapDB("doc", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapDB("doc", err)
	}
	return nil
}

func (r *DocRepository) Read(ctx context.Context, id domain.DocID) (*domain.Doc, error) {
	const q = `
		SELECT doc_id, title, description, status, body, thumbnail_url, posted_user_id, created_at, updated_at
		FROM doc
		WHERE doc_id = $1
	`
	var row docRow
	if err := r.pool.QueryRow(ctx, q, id.String()).Scan(
		&row.ID, &row.Title, &row.Description, &row.Status, &row.Body,
		&row.ThumbnailURL, &row.UserID, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, wrapDB("doc", err)
	}
	doc := row.toDomain()
	return &doc, nil
}

func (r *DocRepository) Delete(ctx context.Context, docs ...domain.Doc) error {
	if len(docs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID.String())
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM doc WHERE doc_id = ANY($1)`, ids); err != nil {
		return wrapDB("doc", err)
	}
	return nil
}

func (r *DocRepository) Get(ctx context.Context, q ports.GetDocQuery) (*ports.DocDto, error) {
	const sel = `
		SELECT doc_id, title, description, status, body, thumbnail_url, posted_user_id, created_at, updated_at
		FROM doc
		WHERE doc_id = $1
	`
	var row docRow
	if err := r.pool.QueryRow(ctx, sel, q.ID).Scan(
		&row.ID, &row.Title, &row.Description, &row.Status, &row.Body,
		&row.ThumbnailURL, &row.UserID, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, wrapDB("doc", err)
	}
	return &ports.DocDto{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Status:       string(rowStatus(row.Status)),
		Body:         row.Body,
		ThumbnailURL: row.ThumbnailURL,
		UserID:       row.UserID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func (r *DocRepository) Search(ctx context.Context, q ports.SearchDocQuery) ([]ports.DocInfo, error) {
	sel := `
		SELECT doc_id, title, description, status, created_at, updated_at
		FROM doc
	`
	args := []any{}
	if len(q.Statuses) > 0 {
		statuses := make([]string, 0, len(q.Statuses))
		for _, s := range q.Statuses {
			statuses = append(statuses, string(s))
		}
		sel += ` WHERE status = ANY($1)`
		args = append(args, statuses)
	}
	sel += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, sel, args...)
	if err != nil {
		return nil, wrapDB("doc", err)
	}
	defer rows.Close()

	infos := []ports.DocInfo{}
	for rows.Next() {
		var row docRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Description, &row.Status, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, wrapDB("doc", err)
		}
		infos = append(infos, ports.DocInfo{
			ID:          row.ID,
			Slug:        domain.DocID(row.ID).Short(),
			Title:       row.Title,
			Description: row.Description,
			Status:      string(rowStatus(row.Status)),
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB("doc", err)
	}
	return infos, nil
}

// GetAll lists documents as feed entries, author name resolved via the user
// table. A missing author row falls back to the raw posted user id; the
// original schema tracks authors loosely, with no foreign key.
func (r *DocRepository) GetAll(ctx context.Context) ([]domain.Kioku, error) {
	const q = `
		SELECT d.doc_id, d.title, d.thumbnail_url, COALESCE(NULLIF(u.name, ''), d.posted_user_id), d.created_at
		FROM doc d
		LEFT JOIN app_user u ON u.user_id = d.posted_user_id
		ORDER BY d.created_at DESC
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, wrapDB("doc", err)
	}
	defer rows.Close()

	kiokus := []domain.Kioku{}
	for rows.Next() {
		var k domain.DocKioku
		var id string
		if err := rows.Scan(&id, &k.Title, &k.ThumbnailURL, &k.UserName, &k.CreatedAt); err != nil {
			return nil, wrapDB("doc", err)
		}
		docID, err := domain.NewDocID(id, "DocKioku.id")
		if err != nil {
			return nil, err
		}
		k.ID = docID
		kiokus = append(kiokus, k)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB("doc", err)
	}
	return kiokus, nil
}

package repo

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"kioku/src/core/domain"
	"kioku/src/infra/db"
)

// YoutubeRepository implements ports.YoutubeRepository and
// ports.YoutubeKiokuSource using pgx.
type YoutubeRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewYoutubeRepository constructs a video repository backed by Postgres.
func NewYoutubeRepository(pg *db.Postgres, log *slog.Logger) *YoutubeRepository {
	return &YoutubeRepository{pool: pg.Pool, log: log}
}

func (r *YoutubeRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

type youtubeRow struct {
	ID          string
	Title       string
	ChannelName string
	Duration    string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toYoutubeRow(y domain.Youtube) youtubeRow {
	return youtubeRow{
		ID:          y.ID.String(),
		Title:       y.Info.Title,
		ChannelName: y.Info.ChannelName,
		Duration:    y.Info.Duration,
		IsPublic:    y.Info.IsPublic,
		CreatedAt:   y.CreatedAt,
		UpdatedAt:   y.UpdatedAt,
	}
}

func (row youtubeRow) toDomain() domain.Youtube {
	return domain.Youtube{
		ID: domain.YoutubeID(row.ID),
		Info: domain.YoutubeInfo{
			Title:       row.Title,
			ChannelName: row.ChannelName,
			Duration:    row.Duration,
			IsPublic:    row.IsPublic,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func (r *YoutubeRepository) Upsert(ctx context.Context, videos ...domain.Youtube) error {
	if len(videos) == 0 {
		return nil
	}
	ids := make([]string, 0, len(videos))
	for _, y := range videos {
		ids = append(ids, y.ID.String())
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapDB("youtube", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM youtube WHERE youtube_id = ANY($1)`, ids); err != nil {
		return wrapDB("youtube", err)
	}
	const q = `
		INSERT INTO youtube (youtube_id, title, channel_name, duration, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, y := range videos {
		row := toYoutubeRow(y)
		if _, err := tx.Exec(ctx, q,
			row.ID, row.Title, row.ChannelName, row.Duration, row.IsPublic, row.CreatedAt, row.UpdatedAt,
		); err != nil {
			return wrapDB("youtube", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapDB("youtube", err)
	}
	return nil
}

func (r *YoutubeRepository) Read(ctx context.Context, id domain.YoutubeID) (*domain.Youtube, error) {
	const q = `
		SELECT youtube_id, title, channel_name, duration, is_public, created_at, updated_at
		FROM youtube
		WHERE youtube_id = $1
	`
	var row youtubeRow
	if err := r.pool.QueryRow(ctx, q, id.String()).Scan(
		&row.ID, &row.Title, &row.ChannelName, &row.Duration, &row.IsPublic, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, wrapDB("youtube", err)
	}
	video := row.toDomain()
	return &video, nil
}

func (r *YoutubeRepository) Delete(ctx context.Context, videos ...domain.Youtube) error {
	if len(videos) == 0 {
		return nil
	}
	ids := make([]string, 0, len(videos))
	for _, y := range videos {
		ids = append(ids, y.ID.String())
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM youtube WHERE youtube_id = ANY($1)`, ids); err != nil {
		return wrapDB("youtube", err)
	}
	return nil
}

// GetAll lists videos as feed entries.
func (r *YoutubeRepository) GetAll(ctx context.Context) ([]domain.Kioku, error) {
	const q = `
		SELECT youtube_id, title, channel_name, duration, is_public, created_at
		FROM youtube
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, wrapDB("youtube", err)
	}
	defer rows.Close()

	kiokus := []domain.Kioku{}
	for rows.Next() {
		var k domain.YoutubeKioku
		var id string
		if err := rows.Scan(&id, &k.Title, &k.ChannelName, &k.Duration, &k.IsPublic, &k.CreatedAt); err != nil {
			return nil, wrapDB("youtube", err)
		}
		youtubeID, err := domain.NewYoutubeID(id, "YoutubeKioku.id")
		if err != nil {
			return nil, err
		}
		k.ID = youtubeID
		kiokus = append(kiokus, k)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB("youtube", err)
	}
	return kiokus, nil
}

package repo

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"kioku/src/core/domain"
	"kioku/src/infra/db"
)

// UserRepository implements ports.UserRepository using pgx.
type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewUserRepository constructs a user repository backed by Postgres.
func NewUserRepository(pg *db.Postgres, log *slog.Logger) *UserRepository {
	return &UserRepository{pool: pg.Pool, log: log}
}

func (r *UserRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

type userRow struct {
	ID        string
	Name      string
	Email     string
	ImgURL    string
	Discord   string
	Github    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toUserRow(u domain.User) userRow {
	var imgURL string
	if u.ImgURL != nil {
		imgURL = u.ImgURL.String()
	}
	return userRow{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email.String(),
		ImgURL:    imgURL,
		Discord:   u.Discord,
		Github:    u.Github,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (row userRow) toDomain() domain.User {
	var imgURL *domain.URL
	if row.ImgURL != "" {
		u := domain.URL(row.ImgURL)
		imgURL = &u
	}
	return domain.User{
		ID:        domain.UserID(row.ID),
		Name:      row.Name,
		Email:     domain.Email(row.Email),
		ImgURL:    imgURL,
		Discord:   row.Discord,
		Github:    row.Github,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func (r *UserRepository) Upsert(ctx context.Context, users ...domain.User) error {
	if len(users) == 0 {
		return nil
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID.String())
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapDB("user", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM app_user WHERE user_id = ANY($1)`, ids); err != nil {
		return wrapDB("user", err)
	}
	const q = `
		INSERT INTO app_user (user_id, name, email, img_url, discord, github, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, u := range users {
		row := toUserRow(u)
		if _, err := tx.Exec(ctx, q,
			row.ID, row.Name, row.Email, row.ImgURL, row.Discord, row.Github, row.CreatedAt, row.UpdatedAt,
		); err != nil {
			return wrapDB("user", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapDB("user", err)
	}
	return nil
}

func (r *UserRepository) Read(ctx context.Context, id domain.UserID) (*domain.User, error) {
	const q = `
		SELECT user_id, name, email, img_url, discord, github, created_at, updated_at
		FROM app_user
		WHERE user_id = $1
	`
	var row userRow
	if err := r.pool.QueryRow(ctx, q, id.String()).Scan(
		&row.ID, &row.Name, &row.Email, &row.ImgURL, &row.Discord, &row.Github, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, wrapDB("user", err)
	}
	user := row.toDomain()
	return &user, nil
}

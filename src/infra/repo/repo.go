// Package repo contains PostgreSQL implementations of the repository ports.
//
// Each aggregate gets its own file and repository type. All repositories
// receive the database pool via constructor injection and implement the
// corresponding interface from src/core/ports.
//
// Upserts run as delete-then-insert inside one transaction: the aggregates
// are replaced wholesale, never patched column by column, so a single
// upsert is atomic and idempotent.
package repo

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"kioku/src/core/domain"
)

// wrapDB classifies a driver error: no rows becomes a not-found error for
// the named resource, anything else is a system error.
func wrapDB(resource string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(resource)
	}
	return domain.NewSystemError("database error: "+resource, err)
}

package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

// foreign_key_violation; raised both when a delete leaves dangling dependents
// and when a write references a row outside its store (composite FKs).
const fkViolation = "23503"

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
		return repository.ErrConflict
	}
	return err
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

func (r *StoreRepository) Create(ctx context.Context, s *entity.Store) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO stores (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, s.UserID, s.Name)

	return wrapErr(row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt))
}

func (r *StoreRepository) GetForUser(ctx context.Context, id, userID string) (*entity.Store, error) {
	s := &entity.Store{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return s, nil
}

func (r *StoreRepository) ListForUser(ctx context.Context, userID string) ([]entity.Store, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Store, 0)
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, s)
	}
	return out, wrapErr(rows.Err())
}

func (r *StoreRepository) Update(ctx context.Context, s *entity.Store) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE stores
		SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING user_id, created_at, updated_at
	`, s.Name, s.ID)

	return wrapErr(row.Scan(&s.UserID, &s.CreatedAt, &s.UpdatedAt))
}

func (r *StoreRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.RowsAffected(), nil
}

var _ repository.StoreRepository = (*StoreRepository)(nil)

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type SizeRepository struct {
	pool *pgxpool.Pool
}

func NewSizeRepository(pool *pgxpool.Pool) *SizeRepository {
	return &SizeRepository{pool: pool}
}

func (r *SizeRepository) Create(ctx context.Context, s *entity.Size) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sizes (store_id, name, value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, s.StoreID, s.Name, s.Value)

	return wrapErr(row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt))
}

func (r *SizeRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Size, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Size, 0)
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.StoreID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, s)
	}
	return out, wrapErr(rows.Err())
}

func (r *SizeRepository) GetByID(ctx context.Context, id string) (*entity.Size, error) {
	s := &entity.Size{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes
		WHERE id = $1
	`, id)

	if err := row.Scan(&s.ID, &s.StoreID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return s, nil
}

func (r *SizeRepository) Update(ctx context.Context, s *entity.Size) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE sizes
		SET name = $1, value = $2, updated_at = now()
		WHERE id = $3
		RETURNING store_id, created_at, updated_at
	`, s.Name, s.Value, s.ID)

	return wrapErr(row.Scan(&s.StoreID, &s.CreatedAt, &s.UpdatedAt))
}

func (r *SizeRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM sizes WHERE id = $1`, id)
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.RowsAffected(), nil
}

var _ repository.SizeRepository = (*SizeRepository)(nil)

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type ColorRepository struct {
	pool *pgxpool.Pool
}

func NewColorRepository(pool *pgxpool.Pool) *ColorRepository {
	return &ColorRepository{pool: pool}
}

func (r *ColorRepository) Create(ctx context.Context, c *entity.Color) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO colors (store_id, name, value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.StoreID, c.Name, c.Value)

	return wrapErr(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *ColorRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Color, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colors
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Color, 0)
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, c)
	}
	return out, wrapErr(rows.Err())
}

func (r *ColorRepository) GetByID(ctx context.Context, id string) (*entity.Color, error) {
	c := &entity.Color{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colors
		WHERE id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}

func (r *ColorRepository) Update(ctx context.Context, c *entity.Color) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE colors
		SET name = $1, value = $2, updated_at = now()
		WHERE id = $3
		RETURNING store_id, created_at, updated_at
	`, c.Name, c.Value, c.ID)

	return wrapErr(row.Scan(&c.StoreID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *ColorRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM colors WHERE id = $1`, id)
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.RowsAffected(), nil
}

var _ repository.ColorRepository = (*ColorRepository)(nil)

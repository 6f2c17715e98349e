package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create relies on the composite (billboard_id, store_id) foreign key: a
// billboard from another store fails exactly like a missing one.
func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (store_id, name, billboard_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.StoreID, c.Name, c.BillboardID)

	return wrapErr(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *CategoryRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, name, billboard_id, created_at, updated_at
		FROM categories
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.BillboardID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, c)
	}
	return out, wrapErr(rows.Err())
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c := &entity.Category{Billboard: &entity.Billboard{}}

	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.store_id, c.name, c.billboard_id, c.created_at, c.updated_at,
		       b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
		FROM categories c
		JOIN billboards b ON b.id = c.billboard_id
		WHERE c.id = $1
	`, id)

	b := c.Billboard
	if err := row.Scan(
		&c.ID, &c.StoreID, &c.Name, &c.BillboardID, &c.CreatedAt, &c.UpdatedAt,
		&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE categories
		SET name = $1, billboard_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING store_id, created_at, updated_at
	`, c.Name, c.BillboardID, c.ID)

	return wrapErr(row.Scan(&c.StoreID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.RowsAffected(), nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

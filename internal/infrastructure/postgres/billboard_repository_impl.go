package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type BillboardRepository struct {
	pool *pgxpool.Pool
}

func NewBillboardRepository(pool *pgxpool.Pool) *BillboardRepository {
	return &BillboardRepository{pool: pool}
}

func (r *BillboardRepository) Create(ctx context.Context, b *entity.Billboard) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO billboards (store_id, label, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, b.StoreID, b.Label, b.ImageURL)

	return wrapErr(row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt))
}

func (r *BillboardRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Billboard, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Billboard, 0)
	for rows.Next() {
		var b entity.Billboard
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, b)
	}
	return out, wrapErr(rows.Err())
}

func (r *BillboardRepository) GetByID(ctx context.Context, id string) (*entity.Billboard, error) {
	b := &entity.Billboard{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards
		WHERE id = $1
	`, id)

	if err := row.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return b, nil
}

func (r *BillboardRepository) Update(ctx context.Context, b *entity.Billboard) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE billboards
		SET label = $1, image_url = $2, updated_at = now()
		WHERE id = $3
		RETURNING store_id, created_at, updated_at
	`, b.Label, b.ImageURL, b.ID)

	return wrapErr(row.Scan(&b.StoreID, &b.CreatedAt, &b.UpdatedAt))
}

func (r *BillboardRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM billboards WHERE id = $1`, id)
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.RowsAffected(), nil
}

var _ repository.BillboardRepository = (*BillboardRepository)(nil)

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productRelationColumns = `
	p.id, p.store_id, p.name, p.price, p.category_id, p.color_id, p.size_id,
	p.is_featured, p.is_archived, p.created_at, p.updated_at,
	c.id, c.store_id, c.name, c.billboard_id, c.created_at, c.updated_at,
	s.id, s.store_id, s.name, s.value, s.created_at, s.updated_at,
	col.id, col.store_id, col.name, col.value, col.created_at, col.updated_at`

const productRelationJoins = `
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN sizes s ON s.id = p.size_id
	JOIN colors col ON col.id = p.color_id`

func scanProductWithRelations(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{
		Category: &entity.Category{},
		Size:     &entity.Size{},
		Color:    &entity.Color{},
	}
	c, s, col := p.Category, p.Size, p.Color
	err := row.Scan(
		&p.ID, &p.StoreID, &p.Name, &p.Price, &p.CategoryID, &p.ColorID, &p.SizeID,
		&p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.StoreID, &c.Name, &c.BillboardID, &c.CreatedAt, &c.UpdatedAt,
		&s.ID, &s.StoreID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt,
		&col.ID, &col.StoreID, &col.Name, &col.Value, &col.CreatedAt, &col.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts the product row and its images in one transaction. Image
// position follows the order of the submitted collection.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO products (store_id, name, price, category_id, color_id, size_id, is_featured, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, p.StoreID, p.Name, p.Price, p.CategoryID, p.ColorID, p.SizeID, p.IsFeatured, p.IsArchived)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return wrapErr(err)
	}

	if err := insertImages(ctx, tx, p); err != nil {
		return wrapErr(err)
	}
	return wrapErr(tx.Commit(ctx))
}

func insertImages(ctx context.Context, tx pgx.Tx, p *entity.Product) error {
	for i := range p.Images {
		img := &p.Images[i]
		img.ProductID = p.ID
		row := tx.QueryRow(ctx, `
			INSERT INTO product_images (product_id, url, position)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`, p.ID, img.URL, i)
		if err := row.Scan(&img.ID, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return err
		}
	}
	return nil
}

// ListByStore returns unarchived products newest first, with relations and
// images loaded. Filters are optional equality predicates.
func (r *ProductRepository) ListByStore(ctx context.Context, storeID string, f repository.ProductFilter) ([]entity.Product, error) {
	q := `SELECT` + productRelationColumns + productRelationJoins + `
	WHERE p.store_id = $1 AND p.is_archived = false`
	args := []any{storeID}

	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		q += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	if f.ColorID != "" {
		args = append(args, f.ColorID)
		q += fmt.Sprintf(" AND p.color_id = $%d", len(args))
	}
	if f.SizeID != "" {
		args = append(args, f.SizeID)
		q += fmt.Sprintf(" AND p.size_id = $%d", len(args))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		q += fmt.Sprintf(" AND p.is_featured = $%d", len(args))
	}
	q += " ORDER BY p.created_at DESC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Product, 0)
	for rows.Next() {
		p, err := scanProductWithRelations(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	if err := r.attachImages(ctx, out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

func (r *ProductRepository) attachImages(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]string, len(products))
	byID := make(map[string]*entity.Product, len(products))
	for i := range products {
		products[i].Images = make([]entity.Image, 0)
		ids[i] = products[i].ID
		byID[products[i].ID] = &products[i]
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, url, created_at, updated_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY product_id, position
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return err
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+productRelationColumns+productRelationJoins+`
	WHERE p.id = $1`, id)

	p, err := scanProductWithRelations(row)
	if err != nil {
		return nil, wrapErr(err)
	}
	list := []entity.Product{*p}
	if err := r.attachImages(ctx, list); err != nil {
		return nil, wrapErr(err)
	}
	return &list[0], nil
}

// GetManyByIDs is the checkout lookup: bare product rows, duplicates in ids
// collapse to one row each.
func (r *ProductRepository) GetManyByIDs(ctx context.Context, ids []string) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, name, price, category_id, color_id, size_id,
		       is_featured, is_archived, created_at, updated_at
		FROM products
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Product, 0, len(ids))
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.StoreID, &p.Name, &p.Price, &p.CategoryID, &p.ColorID, &p.SizeID,
			&p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, p)
	}
	return out, wrapErr(rows.Err())
}

// Update replaces the mutable fields and swaps the entire image collection:
// all prior images are removed, then the submitted set is inserted in order.
func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		UPDATE products
		SET name = $1, price = $2, category_id = $3, color_id = $4, size_id = $5,
		    is_featured = $6, is_archived = $7, updated_at = now()
		WHERE id = $8
		RETURNING store_id, created_at, updated_at
	`, p.Name, p.Price, p.CategoryID, p.ColorID, p.SizeID, p.IsFeatured, p.IsArchived, p.ID)
	if err := row.Scan(&p.StoreID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return wrapErr(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, p.ID); err != nil {
		return wrapErr(err)
	}
	if err := insertImages(ctx, tx, p); err != nil {
		return wrapErr(err)
	}
	return wrapErr(tx.Commit(ctx))
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.RowsAffected(), nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

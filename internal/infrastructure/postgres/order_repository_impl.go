package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and one item per entry of o.OrderItems in a single
// transaction. Duplicate product ids stay duplicate items.
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO orders (store_id, is_paid)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, o.StoreID, o.IsPaid)
	if err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return wrapErr(err)
	}

	for i := range o.OrderItems {
		item := &o.OrderItems[i]
		item.OrderID = o.ID
		itemRow := tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id)
			VALUES ($1, $2)
			RETURNING id
		`, o.ID, item.ProductID)
		if err := itemRow.Scan(&item.ID); err != nil {
			return wrapErr(err)
		}
	}
	return wrapErr(tx.Commit(ctx))
}

func (r *OrderRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, is_paid, created_at, updated_at
		FROM orders
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.StoreID, &o.IsPaid, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	if err := r.attachItems(ctx, out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o := &entity.Order{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, store_id, is_paid, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)
	if err := row.Scan(&o.ID, &o.StoreID, &o.IsPaid, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, wrapErr(err)
	}
	list := []entity.Order{*o}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, wrapErr(err)
	}
	return &list[0], nil
}

// attachItems eager-loads order items with their product rows so the
// dashboard can render totals without extra round trips.
func (r *OrderRepository) attachItems(ctx context.Context, orders []entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	byID := make(map[string]*entity.Order, len(orders))
	for i := range orders {
		orders[i].OrderItems = make([]entity.OrderItem, 0)
		ids[i] = orders[i].ID
		byID[orders[i].ID] = &orders[i]
	}

	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.order_id, i.product_id,
		       p.id, p.store_id, p.name, p.price, p.category_id, p.color_id, p.size_id,
		       p.is_featured, p.is_archived, p.created_at, p.updated_at
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.order_id
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.OrderItem
		p := &entity.Product{}
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&p.ID, &p.StoreID, &p.Name, &p.Price, &p.CategoryID, &p.ColorID, &p.SizeID,
			&p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return err
		}
		item.Product = p
		if o, ok := byID[item.OrderID]; ok {
			o.OrderItems = append(o.OrderItems, item)
		}
	}
	return rows.Err()
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// OrderRepository defines order database operations. Orders are only ever
// created by checkout; the dashboard reads them.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
}

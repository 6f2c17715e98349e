package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// ProductFilter narrows storefront listings with optional equality predicates.
// Zero values mean "no filter"; Featured is a tri-state pointer.
type ProductFilter struct {
	CategoryID string
	ColorID    string
	SizeID     string
	Featured   *bool
}

// ProductRepository defines product database operations. Create and Update
// write the image collection in the same transaction as the product row;
// Update replaces the collection wholesale. ListByStore always excludes
// archived products, eager-loads images/category/size/color and orders by
// creation time descending.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	ListByStore(ctx context.Context, storeID string, f ProductFilter) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetManyByIDs(ctx context.Context, ids []string) ([]entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) (int64, error)
}

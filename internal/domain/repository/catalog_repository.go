package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// BillboardRepository defines billboard database operations. Delete returns
// ErrConflict while a category still references the billboard.
type BillboardRepository interface {
	Create(ctx context.Context, b *entity.Billboard) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Billboard, error)
	GetByID(ctx context.Context, id string) (*entity.Billboard, error)
	Update(ctx context.Context, b *entity.Billboard) error
	Delete(ctx context.Context, id string) (int64, error)
}

// CategoryRepository defines category database operations. GetByID eager-loads
// the referenced billboard.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) (int64, error)
}

// SizeRepository defines size database operations.
type SizeRepository interface {
	Create(ctx context.Context, s *entity.Size) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Size, error)
	GetByID(ctx context.Context, id string) (*entity.Size, error)
	Update(ctx context.Context, s *entity.Size) error
	Delete(ctx context.Context, id string) (int64, error)
}

// ColorRepository defines color database operations.
type ColorRepository interface {
	Create(ctx context.Context, c *entity.Color) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Color, error)
	GetByID(ctx context.Context, id string) (*entity.Color, error)
	Update(ctx context.Context, c *entity.Color) error
	Delete(ctx context.Context, id string) (int64, error)
}

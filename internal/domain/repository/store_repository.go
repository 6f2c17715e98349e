package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// StoreRepository defines the interface for store-related database operations.
// GetForUser is the ownership guard's single storage dependency: it matches a
// store id against the acting user and nothing else.
type StoreRepository interface {
	Create(ctx context.Context, s *entity.Store) error
	GetForUser(ctx context.Context, id, userID string) (*entity.Store, error)
	ListForUser(ctx context.Context, userID string) ([]entity.Store, error)
	Update(ctx context.Context, s *entity.Store) error
	Delete(ctx context.Context, id string) (int64, error)
}

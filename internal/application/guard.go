package application

import (
	"context"
	"errors"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

// StoreGuard decides whether a request may mutate a store's contents. It is
// the leaf dependency of every mutating operation and has no side effects.
type StoreGuard struct {
	Stores repository.StoreRepository
}

func NewStoreGuard(stores repository.StoreRepository) *StoreGuard {
	return &StoreGuard{Stores: stores}
}

// Authorize resolves the store owned by userID. An empty userID means no
// identity was ever established (401); a miss on the (id, userID) lookup means
// the user exists but the store is not theirs (403).
func (g *StoreGuard) Authorize(ctx context.Context, userID, storeID string) (*entity.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	s, err := g.Stores.GetForUser(ctx, storeID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return s, nil
}

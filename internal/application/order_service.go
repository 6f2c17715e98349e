package application

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

// OrderService exposes the read side of orders for the dashboard. Orders are
// written only through checkout, so unlike catalog reads these are guarded:
// order rows carry customer purchase history.
type OrderService struct {
	Repo  repository.OrderRepository
	Guard *StoreGuard
}

func NewOrderService(repo repository.OrderRepository, guard *StoreGuard) *OrderService {
	return &OrderService{Repo: repo, Guard: guard}
}

func (s *OrderService) List(ctx context.Context, userID, storeID string) ([]entity.Order, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.Repo.ListByStore(ctx, storeID)
}

func (s *OrderService) Get(ctx context.Context, userID, storeID, id string) (*entity.Order, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

package application

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

// StoreService manages the tenant roots themselves. There is no guard here;
// ownership is the user id on the row, checked by the repository queries.
type StoreService struct {
	Repo repository.StoreRepository
}

func NewStoreService(repo repository.StoreRepository) *StoreService {
	return &StoreService{Repo: repo}
}

func (s *StoreService) Create(ctx context.Context, userID string, in StoreInput) (*entity.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	st := &entity.Store{UserID: userID, Name: in.Name}
	if err := s.Repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StoreService) List(ctx context.Context, userID string) ([]entity.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.Repo.ListForUser(ctx, userID)
}

func (s *StoreService) Get(ctx context.Context, userID, id string) (*entity.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.Repo.GetForUser(ctx, id, userID)
}

func (s *StoreService) Update(ctx context.Context, userID, id string, in StoreInput) (*entity.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	st, err := s.Repo.GetForUser(ctx, id, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	st.Name = in.Name
	if err := s.Repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StoreService) Delete(ctx context.Context, userID, id string) (int64, error) {
	if userID == "" {
		return 0, ErrUnauthenticated
	}
	if _, err := s.Repo.GetForUser(ctx, id, userID); err != nil {
		if err == repository.ErrNotFound {
			return 0, ErrUnauthorized
		}
		return 0, err
	}
	return s.Repo.Delete(ctx, id)
}

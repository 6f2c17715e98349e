package application

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type fakeStoreRepo struct {
	mu     sync.Mutex
	stores map[string]*entity.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[string]*entity.Store{}}
}

func (f *fakeStoreRepo) Create(_ context.Context, s *entity.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *fakeStoreRepo) GetForUser(_ context.Context, id, userID string) (*entity.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.stores[id]
	if !ok || s.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStoreRepo) ListForUser(_ context.Context, userID string) ([]entity.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Store{}
	for _, s := range f.stores {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStoreRepo) Update(_ context.Context, s *entity.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stores[s.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *fakeStoreRepo) Delete(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stores[id]; !ok {
		return 0, nil
	}
	delete(f.stores, id)
	return 1, nil
}

func seedStore(t *testing.T, repo *fakeStoreRepo, userID string) *entity.Store {
	t.Helper()
	s := &entity.Store{UserID: userID, Name: "shop"}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestStoreGuardAuthorize(t *testing.T) {
	repo := newFakeStoreRepo()
	owner := "user-1"
	store := seedStore(t, repo, owner)
	guard := NewStoreGuard(repo)

	t.Run("owner passes", func(t *testing.T) {
		got, err := guard.Authorize(context.Background(), owner, store.ID)
		require.NoError(t, err)
		require.Equal(t, store.ID, got.ID)
	})

	t.Run("empty user is unauthenticated", func(t *testing.T) {
		_, err := guard.Authorize(context.Background(), "", store.ID)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("other user is unauthorized", func(t *testing.T) {
		_, err := guard.Authorize(context.Background(), "user-2", store.ID)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown store is unauthorized", func(t *testing.T) {
		_, err := guard.Authorize(context.Background(), owner, uuid.NewString())
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

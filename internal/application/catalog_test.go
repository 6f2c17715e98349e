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

type fakeBillboardRepo struct {
	mu    sync.Mutex
	rows  map[string]*entity.Billboard
	refed map[string]bool // ids referenced by a category
}

func newFakeBillboardRepo() *fakeBillboardRepo {
	return &fakeBillboardRepo{rows: map[string]*entity.Billboard{}, refed: map[string]bool{}}
}

func (f *fakeBillboardRepo) Create(_ context.Context, b *entity.Billboard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = uuid.NewString()
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBillboardRepo) ListByStore(_ context.Context, storeID string) ([]entity.Billboard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Billboard{}
	for _, b := range f.rows {
		if b.StoreID == storeID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBillboardRepo) GetByID(_ context.Context, id string) (*entity.Billboard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBillboardRepo) Update(_ context.Context, b *entity.Billboard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.rows[b.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Label = b.Label
	cur.ImageURL = b.ImageURL
	*b = *cur
	return nil
}

func (f *fakeBillboardRepo) Delete(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.refed[id] {
		return 0, repository.ErrConflict
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeBillboardRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func TestBillboardServiceOwnership(t *testing.T) {
	stores := newFakeStoreRepo()
	owner := "user-1"
	store := seedStore(t, stores, owner)
	repo := newFakeBillboardRepo()
	svc := NewBillboardService(repo, NewStoreGuard(stores))

	in := BillboardInput{Label: "Sale", ImageURL: "https://img.test/sale.jpg"}

	t.Run("create requires ownership", func(t *testing.T) {
		_, err := svc.Create(context.Background(), "intruder", store.ID, in)
		require.ErrorIs(t, err, ErrUnauthorized)
		require.Zero(t, repo.count(), "denied create must not write")
	})

	t.Run("create then get round trip", func(t *testing.T) {
		created, err := svc.Create(context.Background(), owner, store.ID, in)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, store.ID, created.StoreID)

		got, err := svc.Get(context.Background(), created.ID)
		require.NoError(t, err)
		require.Equal(t, in.Label, got.Label)
		require.Equal(t, in.ImageURL, got.ImageURL)
	})

	t.Run("reads are unguarded", func(t *testing.T) {
		list, err := svc.List(context.Background(), store.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("update requires ownership", func(t *testing.T) {
		list, _ := repo.ListByStore(context.Background(), store.ID)
		_, err := svc.Update(context.Background(), "", store.ID, list[0].ID, in)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("delete surfaces referential conflict", func(t *testing.T) {
		list, _ := repo.ListByStore(context.Background(), store.ID)
		id := list[0].ID
		repo.refed[id] = true
		_, err := svc.Delete(context.Background(), owner, store.ID, id)
		require.ErrorIs(t, err, repository.ErrConflict)
		_, err = svc.Get(context.Background(), id)
		require.NoError(t, err, "conflicting delete must leave the row intact")
	})

	t.Run("delete of missing row reports zero", func(t *testing.T) {
		n, err := svc.Delete(context.Background(), owner, store.ID, uuid.NewString())
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

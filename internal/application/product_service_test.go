package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

func TestProductServiceImagesReplacedWholesale(t *testing.T) {
	stores := newFakeStoreRepo()
	owner := "user-1"
	store := seedStore(t, stores, owner)
	repo := newFakeProductRepo()
	svc := NewProductService(repo, NewStoreGuard(stores), nil, 0, nil, "", quietLogger())

	in := ProductInput{
		Images: []ImageInput{
			{URL: "https://img.test/1.jpg"},
			{URL: "https://img.test/2.jpg"},
			{URL: "https://img.test/3.jpg"},
		},
		Name:       "Tee",
		Price:      12.5,
		CategoryID: "cat",
		ColorID:    "col",
		SizeID:     "siz",
	}
	created, err := svc.Create(context.Background(), owner, store.ID, in)
	require.NoError(t, err)
	require.Len(t, created.Images, 3)

	in.Images = []ImageInput{{URL: "https://img.test/only.jpg"}}
	updated, err := svc.Update(context.Background(), owner, store.ID, created.ID, in)
	require.NoError(t, err)
	require.Len(t, updated.Images, 1)
	require.Equal(t, "https://img.test/only.jpg", updated.Images[0].URL)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 1)
}

func TestProductServiceListFilters(t *testing.T) {
	stores := newFakeStoreRepo()
	owner := "user-1"
	store := seedStore(t, stores, owner)
	repo := newFakeProductRepo()
	svc := NewProductService(repo, NewStoreGuard(stores), nil, 0, nil, "", quietLogger())

	mk := func(name, cat string, featured, archived bool) {
		t.Helper()
		_, err := svc.Create(context.Background(), owner, store.ID, ProductInput{
			Images:     []ImageInput{{URL: "https://img.test/p.jpg"}},
			Name:       name,
			Price:      1,
			CategoryID: cat,
			ColorID:    "col",
			SizeID:     "siz",
			IsFeatured: featured,
			IsArchived: archived,
		})
		require.NoError(t, err)
	}
	mk("a", "shirts", true, false)
	mk("b", "shirts", false, false)
	mk("c", "pants", false, false)
	mk("d", "shirts", true, true) // archived, never listed

	all, err := svc.List(context.Background(), store.ID, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	shirts, err := svc.List(context.Background(), store.ID, repository.ProductFilter{CategoryID: "shirts"})
	require.NoError(t, err)
	require.Len(t, shirts, 2)

	featured := true
	feat, err := svc.List(context.Background(), store.ID, repository.ProductFilter{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, feat, 1)
	require.Equal(t, "a", feat[0].Name)
}

func TestProductServiceMutationsGuarded(t *testing.T) {
	stores := newFakeStoreRepo()
	store := seedStore(t, stores, "user-1")
	repo := newFakeProductRepo()
	svc := NewProductService(repo, NewStoreGuard(stores), nil, 0, nil, "", quietLogger())

	in := ProductInput{
		Images: []ImageInput{{URL: "https://img.test/p.jpg"}},
		Name:   "Tee", Price: 1, CategoryID: "c", ColorID: "c", SizeID: "s",
	}
	_, err := svc.Create(context.Background(), "", store.ID, in)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Create(context.Background(), "intruder", store.ID, in)
	require.ErrorIs(t, err, ErrUnauthorized)

	list, err := svc.List(context.Background(), store.ID, repository.ProductFilter{})
	require.NoError(t, err)
	require.Empty(t, list, "denied create must not write")
}

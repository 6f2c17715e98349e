package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreService(t *testing.T) {
	repo := newFakeStoreRepo()
	svc := NewStoreService(repo)
	ctx := context.Background()

	t.Run("create requires identity", func(t *testing.T) {
		_, err := svc.Create(ctx, "", StoreInput{Name: "shop"})
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("lifecycle", func(t *testing.T) {
		created, err := svc.Create(ctx, "user-1", StoreInput{Name: "shop"})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		list, err := svc.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, list, 1)

		updated, err := svc.Update(ctx, "user-1", created.ID, StoreInput{Name: "renamed"})
		require.NoError(t, err)
		require.Equal(t, "renamed", updated.Name)

		_, err = svc.Update(ctx, "user-2", created.ID, StoreInput{Name: "stolen"})
		require.ErrorIs(t, err, ErrUnauthorized)

		_, err = svc.Delete(ctx, "user-2", created.ID)
		require.ErrorIs(t, err, ErrUnauthorized)

		n, err := svc.Delete(ctx, "user-1", created.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})
}

package application

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type fakeProductRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for i := range p.Images {
		p.Images[i].ID = uuid.NewString()
		p.Images[i].ProductID = p.ID
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) ListByStore(_ context.Context, storeID string, fil repository.ProductFilter) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Product{}
	for _, p := range f.rows {
		if p.StoreID != storeID || p.IsArchived {
			continue
		}
		if fil.CategoryID != "" && p.CategoryID != fil.CategoryID {
			continue
		}
		if fil.ColorID != "" && p.ColorID != fil.ColorID {
			continue
		}
		if fil.SizeID != "" && p.SizeID != fil.SizeID {
			continue
		}
		if fil.Featured != nil && p.IsFeatured != *fil.Featured {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetManyByIDs(_ context.Context, ids []string) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	out := []entity.Product{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := f.rows[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.rows[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	p.StoreID = cur.StoreID
	for i := range p.Images {
		p.Images[i].ID = uuid.NewString()
		p.Images[i].ProductID = p.ID
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	rows   map[string]*entity.Order
	failed bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{rows: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		return errors.New("storage down")
	}
	o.ID = uuid.NewString()
	for i := range o.OrderItems {
		o.OrderItems[i].ID = uuid.NewString()
		o.OrderItems[i].OrderID = o.ID
	}
	cp := *o
	f.rows[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) ListByStore(_ context.Context, storeID string) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Order{}
	for _, o := range f.rows {
		if o.StoreID == storeID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCheckout(t *testing.T) {
	products := newFakeProductRepo()
	orders := newFakeOrderRepo()
	storeID := uuid.NewString()

	p := &entity.Product{StoreID: storeID, Name: "Tee", Price: 10}
	require.NoError(t, products.Create(context.Background(), p))

	svc := NewCheckoutService(products, orders, nil, "http://store.test", quietLogger())

	t.Run("duplicate ids produce duplicate items", func(t *testing.T) {
		url := svc.Checkout(context.Background(), storeID, CheckoutInput{ProductIDs: []string{p.ID, p.ID}})
		require.Equal(t, "http://store.test/cart?success=1", url)

		created, err := orders.ListByStore(context.Background(), storeID)
		require.NoError(t, err)
		require.Len(t, created, 1)
		require.False(t, created[0].IsPaid)
		require.Len(t, created[0].OrderItems, 2)
		require.Equal(t, p.ID, created[0].OrderItems[0].ProductID)
		require.Equal(t, p.ID, created[0].OrderItems[1].ProductID)
	})

	t.Run("storage failure redirects to canceled", func(t *testing.T) {
		orders.failed = true
		defer func() { orders.failed = false }()
		url := svc.Checkout(context.Background(), storeID, CheckoutInput{ProductIDs: []string{p.ID}})
		require.Equal(t, "http://store.test/cart?canceled=1", url)
	})
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type memProductRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo { return &memProductRepo{rows: map[string]*entity.Product{}} }

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.NewString()
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memProductRepo) ListByStore(_ context.Context, storeID string, _ repository.ProductFilter) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Product{}
	for _, p := range m.rows {
		if p.StoreID == storeID && !p.IsArchived {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetManyByIDs(_ context.Context, ids []string) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]bool{}
	out := []entity.Product{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := m.rows[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Delete(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

type memOrderRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Order
}

func newMemOrderRepo() *memOrderRepo { return &memOrderRepo{rows: map[string]*entity.Order{}} }

func (m *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = uuid.NewString()
	for i := range o.OrderItems {
		o.OrderItems[i].ID = uuid.NewString()
		o.OrderItems[i].OrderID = o.ID
	}
	cp := *o
	m.rows[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) ListByStore(_ context.Context, storeID string) ([]entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Order{}
	for _, o := range m.rows {
		if o.StoreID == storeID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

type checkoutFixture struct {
	engine   *gin.Engine
	products *memProductRepo
	orders   *memOrderRepo
	storeID  string
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	products := newMemProductRepo()
	orders := newMemOrderRepo()
	svc := application.NewCheckoutService(products, orders, nil, "http://store.test", testLogger())
	handler := NewCheckoutHandler(svc, testLogger())

	engine := gin.New()
	grp := engine.Group("/api/:storeId")
	handler.Register(grp)

	return &checkoutFixture{engine: engine, products: products, orders: orders, storeID: uuid.NewString()}
}

func (f *checkoutFixture) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/"+f.storeID+"/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestCheckoutValidation(t *testing.T) {
	f := newCheckoutFixture(t)

	w := f.post(`{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "productIds is required", w.Body.String())

	w = f.post(`{"productIds":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "productIds is required", w.Body.String())

	require.Empty(t, f.orders.rows)
}

func TestCheckoutDuplicatesKeepDuplicateItems(t *testing.T) {
	f := newCheckoutFixture(t)
	p := &entity.Product{StoreID: f.storeID, Name: "Tee", Price: 10}
	require.NoError(t, f.products.Create(context.Background(), p))

	w := f.post(`{"productIds":["` + p.ID + `","` + p.ID + `"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.JSONEq(t, `{"url":"http://store.test/cart?success=1"}`, w.Body.String())

	orders, err := f.orders.ListByStore(context.Background(), f.storeID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].OrderItems, 2)
	require.False(t, orders[0].IsPaid)
}

func TestCheckoutPreflight(t *testing.T) {
	f := newCheckoutFixture(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/"+f.storeID+"/checkout", nil)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
	"github.com/oksasatya/store-admin-api/pkg/helpers"
)

// ProductService carries the product-specific behavior that doesn't fit the
// generic resource flow: filtered listings with a redis cache, wholesale image
// replacement, and best-effort Elasticsearch indexing for dashboard search.
// Redis and ES are optional; a nil client disables that concern.
type ProductService struct {
	Repo     repository.ProductRepository
	Guard    *StoreGuard
	Redis    *redis.Client
	CacheTTL time.Duration
	ES       *elasticsearch.Client
	ESIndex  string
	Logger   *logrus.Logger
}

func NewProductService(repo repository.ProductRepository, guard *StoreGuard, rdb *redis.Client, cacheTTL time.Duration, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ProductService {
	return &ProductService{
		Repo:     repo,
		Guard:    guard,
		Redis:    rdb,
		CacheTTL: cacheTTL,
		ES:       es,
		ESIndex:  esIndex,
		Logger:   logger,
	}
}

func (s *ProductService) Create(ctx context.Context, userID, storeID string, in ProductInput) (*entity.Product, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	p := productFromInput(in)
	p.StoreID = storeID
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx, storeID)
	s.indexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) List(ctx context.Context, storeID string, f repository.ProductFilter) ([]entity.Product, error) {
	if s.Redis == nil {
		return s.Repo.ListByStore(ctx, storeID, f)
	}

	ver := helpers.CatalogVersion(ctx, s.Redis, storeID)
	key := helpers.ListingCacheKey(storeID, ver, filterVariant(f))
	var cached []entity.Product
	if hit, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && hit {
		return cached, nil
	}

	out, err := s.Repo.ListByStore(ctx, storeID, f)
	if err != nil {
		return nil, err
	}
	if err := helpers.RedisSetJSON(ctx, s.Redis, key, out, s.CacheTTL); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("listing cache write failed")
	}
	return out, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, userID, storeID, id string, in ProductInput) (*entity.Product, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	p := productFromInput(in)
	p.ID = id
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx, storeID)
	s.indexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, userID, storeID, id string) (int64, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidateListings(ctx, storeID)
	s.deindexProduct(ctx, id)
	return n, nil
}

func productFromInput(in ProductInput) *entity.Product {
	images := make([]entity.Image, len(in.Images))
	for i, img := range in.Images {
		images[i] = entity.Image{URL: img.URL}
	}
	return &entity.Product{
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		ColorID:    in.ColorID,
		SizeID:     in.SizeID,
		IsFeatured: in.IsFeatured,
		IsArchived: in.IsArchived,
		Images:     images,
	}
}

func filterVariant(f repository.ProductFilter) string {
	featured := ""
	if f.Featured != nil {
		featured = fmt.Sprintf("%t", *f.Featured)
	}
	return strings.Join([]string{f.CategoryID, f.ColorID, f.SizeID, featured}, "|")
}

func (s *ProductService) invalidateListings(ctx context.Context, storeID string) {
	if s.Redis == nil {
		return
	}
	helpers.BumpCatalogVersion(ctx, s.Redis, storeID)
}

func (s *ProductService) indexProduct(ctx context.Context, p *entity.Product) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         p.ID,
		"storeId":    p.StoreID,
		"name":       p.Name,
		"price":      p.Price,
		"categoryId": p.CategoryID,
		"colorId":    p.ColorID,
		"sizeId":     p.SizeID,
		"isFeatured": p.IsFeatured,
		"isArchived": p.IsArchived,
		"createdAt":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
}

func (s *ProductService) deindexProduct(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a name match scoped to one store. Archived products are indexed
// but filtered out, mirroring the listing policy.
func (s *ProductService) Search(ctx context.Context, storeID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"match": map[string]any{"name": q},
				},
				"filter": []map[string]any{
					{"term": map[string]any{"storeId": storeID}},
					{"term": map[string]any{"isArchived": false}},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

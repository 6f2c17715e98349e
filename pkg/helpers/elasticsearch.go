package helpers

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// NewESClient creates an Elasticsearch client with sane defaults and optional basic auth.
func NewESClient(addrs []string, username, password string) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses:     addrs,
		Username:      username,
		Password:      password,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	}
	return elasticsearch.NewClient(cfg)
}

// productIndexMapping matches the camelCase documents the product service
// writes. The id fields are keywords so search can filter on exact values.
const productIndexMapping = `{
  "mappings": {
    "properties": {
      "id":         {"type": "keyword"},
      "storeId":    {"type": "keyword"},
      "name":       {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
      "price":      {"type": "double"},
      "categoryId": {"type": "keyword"},
      "colorId":    {"type": "keyword"},
      "sizeId":     {"type": "keyword"},
      "isFeatured": {"type": "boolean"},
      "isArchived": {"type": "boolean"},
      "createdAt":  {"type": "date"}
    }
  }
}`

// EnsureProductIndex creates the product index with its mapping when it does
// not exist yet. Existing indices are left untouched.
func EnsureProductIndex(ctx context.Context, es *elasticsearch.Client, index string) error {
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	existsRes, err := esapi.IndicesExistsRequest{Index: []string{index}}.Do(c, es)
	if err != nil {
		return err
	}
	_ = existsRes.Body.Close()
	if existsRes.StatusCode == http.StatusOK {
		return nil
	}

	createRes, err := esapi.IndicesCreateRequest{Index: index, Body: strings.NewReader(productIndexMapping)}.Do(c, es)
	if err != nil {
		return err
	}
	defer func() { _ = createRes.Body.Close() }()
	if createRes.IsError() {
		return fmt.Errorf("create index %q: %s", index, createRes.Status())
	}
	return nil
}

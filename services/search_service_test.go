package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/Velora-Ecommerce/velora-storefront-gateway/cache"
)

func TestSearchEmptyQuerySkipsBackend(t *testing.T) {
	catalog_cache.Invalidate()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	svc := NewSearchService(NewStorefrontClient(server.URL))

	products, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestSearchNormalizesAndCaches(t *testing.T) {
	catalog_cache.Invalidate()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "oxford", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"message":"ok","data":[{"id":"p1","name":"Oxford Shirt"}]}`))
	}))
	defer server.Close()

	svc := NewSearchService(NewStorefrontClient(server.URL))

	first, err := svc.Search(context.Background(), "  Oxford ")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same query, different casing: served from cache.
	second, err := svc.Search(context.Background(), "OXFORD")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

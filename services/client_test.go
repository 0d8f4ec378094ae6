package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

func TestClientDecodesEnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Products retrieved","data":[{"id":"p1","name":"Oxford Shirt","price":68}]}`))
	}))
	defer server.Close()

	client := NewStorefrontClient(server.URL)
	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, 68.0, products[0].Price)
}

func TestClientDecodesBareBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No envelope: the entity sits at the top level.
		_, _ = w.Write([]byte(`{"id":"p1","name":"Oxford Shirt"}`))
	}))
	defer server.Close()

	client := NewStorefrontClient(server.URL)
	product, err := client.GetProduct(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Oxford Shirt", product.Name)
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"message":"ok","data":[]}`))
	}))
	defer server.Close()

	client := NewStorefrontClient(server.URL)
	_, err := client.GetAddresses(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientMapsUnauthorizedToSessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewStorefrontClient(server.URL)
	_, err := client.GetAddresses(context.Background(), "stale")

	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewStorefrontClient(server.URL)
	_, err := client.GetProduct(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientSurfacesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Rating must be between 1 and 5","error":true}`))
	}))
	defer server.Close()

	client := NewStorefrontClient(server.URL)
	_, err := client.CreateReview(context.Background(), "tok", "p1", models.CreateReviewRequest{Rating: 9})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend returned 422")
	assert.Contains(t, err.Error(), "Rating must be between 1 and 5")
}

func TestClientEscapesPathSegments(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"message":"ok","data":{"color":"Navy Blue","variants":[],"availableSizes":[]}}`))
	}))
	defer server.Close()

	client := NewStorefrontClient(server.URL)
	set, err := client.GetProductVariants(context.Background(), "p1", "Navy Blue")

	require.NoError(t, err)
	assert.Equal(t, "/products/p1/variants/Navy%20Blue", gotPath)
	assert.Equal(t, "Navy Blue", set.Color)
}

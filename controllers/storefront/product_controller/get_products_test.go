package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/Velora-Ecommerce/velora-storefront-gateway/cache"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
)

const backendCatalog = `{"message":"Products retrieved","data":[
	{"id":"p1","name":"Oxford Shirt","categoryName":"Shirts","categorySlug":"shirts","price":68,"isOnSale":true,
	 "variants":[{"size":"M","color":"White","stock":4}]},
	{"id":"p2","name":"Linen Trousers","categoryName":"Trousers","categorySlug":"trousers","price":92,
	 "variants":[{"size":"L","color":"Sand","stock":2}]},
	{"id":"p3","name":"Merino Crewneck","categoryName":"Knitwear","categorySlug":"knitwear","price":120,
	 "variants":[{"size":"S","color":"Charcoal","stock":0}]}
]}`

func setupListing(t *testing.T) *gin.Engine {
	t.Helper()
	catalog_cache.Invalidate()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		_, _ = w.Write([]byte(backendCatalog))
	}))
	t.Cleanup(backend.Close)

	client := services.NewStorefrontClient(backend.URL)
	Init(client, services.NewSearchService(client))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/store/products", GetProducts)
	router.GET("/store/products/filters", GetFilterMetadata)
	return router
}

type listingPayload struct {
	Products      []models.Product `json:"products"`
	ActiveFilters int              `json:"activeFilters"`
}

func getListing(t *testing.T, router *gin.Engine, query string) (listingPayload, models.ApiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/store/products"+query, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var payload listingPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload, resp
}

func TestGetProductsUnfiltered(t *testing.T) {
	router := setupListing(t)

	payload, resp := getListing(t, router, "")

	assert.Len(t, payload.Products, 3)
	assert.Zero(t, payload.ActiveFilters)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.TotalPages)
}

func TestGetProductsAppliesFilters(t *testing.T) {
	router := setupListing(t)

	payload, _ := getListing(t, router, "?onSale=true&inStock=true")

	require.Len(t, payload.Products, 1)
	assert.Equal(t, "p1", payload.Products[0].ID)
	assert.Equal(t, 2, payload.ActiveFilters)
}

func TestGetProductsTranslatesSentinels(t *testing.T) {
	router := setupListing(t)

	// "all" means the category filter is not applied.
	payload, _ := getListing(t, router, "?category=all")

	assert.Len(t, payload.Products, 3)
	assert.Zero(t, payload.ActiveFilters)
}

func TestGetProductsPaginates(t *testing.T) {
	router := setupListing(t)

	payload, resp := getListing(t, router, "?page=2&limit=2")

	require.Len(t, payload.Products, 1)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestGetProductsUpstreamFailure(t *testing.T) {
	catalog_cache.Invalidate()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(backend.Close)

	client := services.NewStorefrontClient(backend.URL)
	Init(client, services.NewSearchService(client))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/store/products", GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/store/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetFilterMetadataEndpoint(t *testing.T) {
	router := setupListing(t)

	req := httptest.NewRequest(http.MethodGet, "/store/products/filters", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var metadata models.FilterMetadata
	require.NoError(t, json.Unmarshal(raw, &metadata))

	assert.Len(t, metadata.Categories, 3)
	assert.Len(t, metadata.Sizes, 3)
	assert.Equal(t, 68.0, metadata.PriceRange.Min)
	assert.Equal(t, 120.0, metadata.PriceRange.Max)
}

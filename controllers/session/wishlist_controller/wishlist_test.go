package wishlist_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/session"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/utils"
)

// setupWishlistRouter returns the router plus a counter of upstream sync
// calls received by the fake backend.
func setupWishlistRouter(t *testing.T) (*gin.Engine, *int32) {
	t.Helper()
	var syncCalls int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&syncCalls, 1)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	t.Cleanup(backend.Close)

	Init(session.NewManager(session.NewMemoryPersister()), services.NewStorefrontClient(backend.URL))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	sess := router.Group("/session")
	sess.Use(middleware.SessionMiddleware())
	sess.Use(middleware.OptionalAuth())
	sess.GET("/wishlist", GetWishlist)
	sess.POST("/wishlist/items", AddWishlistItem)
	sess.GET("/wishlist/items/:productId", CheckWishlist)
	sess.DELETE("/wishlist/items/:productId", RemoveWishlistItem)
	return router, &syncCalls
}

func doWishlist(t *testing.T, router *gin.Engine, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "sess-w"})
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const toteItem = `{"productId":"p9","name":"Canvas Tote","price":35}`

func TestWishlistLocalOnlyNeverCallsBackend(t *testing.T) {
	router, syncCalls := setupWishlistRouter(t)

	rec := doWishlist(t, router, http.MethodPost, "/session/wishlist/items", toteItem, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doWishlist(t, router, http.MethodGet, "/session/wishlist/items/p9", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var check struct {
		InWishlist bool `json:"inWishlist"`
	}
	require.NoError(t, json.Unmarshal(raw, &check))
	assert.True(t, check.InWishlist)

	rec = doWishlist(t, router, http.MethodDelete, "/session/wishlist/items/p9", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Anonymous shoppers get a purely local wishlist.
	assert.Zero(t, atomic.LoadInt32(syncCalls))
}

func TestWishlistSyncsWhenSignedIn(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router, syncCalls := setupWishlistRouter(t)

	token, err := utils.SignTestJWT("u1", "shopper@example.com", "Shopper", time.Hour)
	require.NoError(t, err)

	rec := doWishlist(t, router, http.MethodPost, "/session/wishlist/items", toteItem, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doWishlist(t, router, http.MethodDelete, "/session/wishlist/items/p9", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int32(2), atomic.LoadInt32(syncCalls))
}

func TestWishlistRemoveMissingProduct(t *testing.T) {
	router, _ := setupWishlistRouter(t)

	rec := doWishlist(t, router, http.MethodDelete, "/session/wishlist/items/ghost", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

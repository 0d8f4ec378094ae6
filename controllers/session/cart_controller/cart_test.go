package cart_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/session"
)

func setupCartRouter() *gin.Engine {
	Init(session.NewManager(session.NewMemoryPersister()))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	sess := router.Group("/session")
	sess.Use(middleware.SessionMiddleware())
	sess.GET("/cart", GetCart)
	sess.DELETE("/cart", ClearCart)
	sess.POST("/cart/items", AddCartItem)
	sess.PUT("/cart/items/:productId", UpdateCartItem)
	sess.DELETE("/cart/items/:productId", RemoveCartItem)
	return router
}

// doCart sends a request carrying the given session cookie and returns the
// recorder. An empty cookie simulates first contact.
func doCart(t *testing.T, router *gin.Engine, method, target, cookie, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type cartPayload struct {
	Items    []models.CartItem `json:"items"`
	Count    int               `json:"count"`
	Subtotal float64           `json:"subtotal"`
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartPayload {
	t.Helper()
	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var payload cartPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

const oxfordLine = `{"productId":"p1","name":"Oxford Shirt","price":68,"size":"M","color":"White","quantity":1}`

func TestCartLifecycle(t *testing.T) {
	router := setupCartRouter()
	cookie := "sess-1"

	rec := doCart(t, router, http.MethodPost, "/session/cart/items", cookie, oxfordLine)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same product+size+colour merges rather than appending a line.
	rec = doCart(t, router, http.MethodPost, "/session/cart/items", cookie, oxfordLine)
	require.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeCart(t, rec)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, 2, payload.Count)
	assert.Equal(t, 136.0, payload.Subtotal)

	rec = doCart(t, router, http.MethodPut, "/session/cart/items/p1?size=M&color=White", cookie, `{"quantity":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, decodeCart(t, rec).Count)

	rec = doCart(t, router, http.MethodGet, "/session/cart", cookie, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, decodeCart(t, rec).Count)

	rec = doCart(t, router, http.MethodDelete, "/session/cart/items/p1?size=M&color=White", cookie, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)
}

func TestCartIsolatedPerSession(t *testing.T) {
	router := setupCartRouter()

	rec := doCart(t, router, http.MethodPost, "/session/cart/items", "shopper-a", oxfordLine)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doCart(t, router, http.MethodGet, "/session/cart", "shopper-b", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)
}

func TestUpdateMissingCartLine(t *testing.T) {
	router := setupCartRouter()

	rec := doCart(t, router, http.MethodPut, "/session/cart/items/ghost?size=M&color=White", "sess-2", `{"quantity":2}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartMintsSessionOnFirstContact(t *testing.T) {
	router := setupCartRouter()

	rec := doCart(t, router, http.MethodGet, "/session/cart", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestClearCart(t *testing.T) {
	router := setupCartRouter()
	cookie := "sess-3"

	doCart(t, router, http.MethodPost, "/session/cart/items", cookie, oxfordLine)
	rec := doCart(t, router, http.MethodDelete, "/session/cart", cookie, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doCart(t, router, http.MethodGet, "/session/cart", cookie, "")
	assert.Empty(t, decodeCart(t, rec).Items)
}

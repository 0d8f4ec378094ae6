package catalog_cache

import (
	"sync"
	"time"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// TTLs per concern. Product lists change often; the currency config is
// near-static.
const (
	ProductsTTL   = 1 * time.Minute
	CategoriesTTL = 5 * time.Minute
	CurrencyTTL   = 10 * time.Minute
	SearchTTL     = 30 * time.Second
)

// ── Product list cache ───────────────────────────────────────────────────────
// The full active product list backs every filtered listing; caching it keeps
// the filter engine from refetching the catalog per request.

type productsEntry struct {
	data      []models.Product
	fetchedAt time.Time
}

var (
	productsMu    sync.RWMutex
	productsCache *productsEntry
)

func GetProducts() ([]models.Product, bool) {
	productsMu.RLock()
	defer productsMu.RUnlock()
	if productsCache != nil && time.Since(productsCache.fetchedAt) < ProductsTTL {
		return productsCache.data, true
	}
	return nil, false
}

func SetProducts(data []models.Product) {
	productsMu.Lock()
	defer productsMu.Unlock()
	productsCache = &productsEntry{data: data, fetchedAt: time.Now()}
}

// ── Category tree cache ──────────────────────────────────────────────────────

type categoriesEntry struct {
	data      []models.Category
	fetchedAt time.Time
}

var (
	categoriesMu    sync.RWMutex
	categoriesCache *categoriesEntry
)

func GetCategories() ([]models.Category, bool) {
	categoriesMu.RLock()
	defer categoriesMu.RUnlock()
	if categoriesCache != nil && time.Since(categoriesCache.fetchedAt) < CategoriesTTL {
		return categoriesCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.Category) {
	categoriesMu.Lock()
	defer categoriesMu.Unlock()
	categoriesCache = &categoriesEntry{data: data, fetchedAt: time.Now()}
}

// ── Currency config cache ────────────────────────────────────────────────────

type currencyEntry struct {
	data      *models.CurrencyConfig
	fetchedAt time.Time
}

var (
	currencyMu    sync.RWMutex
	currencyCache *currencyEntry
)

func GetCurrency() (*models.CurrencyConfig, bool) {
	currencyMu.RLock()
	defer currencyMu.RUnlock()
	if currencyCache != nil && time.Since(currencyCache.fetchedAt) < CurrencyTTL {
		return currencyCache.data, true
	}
	return nil, false
}

func SetCurrency(data *models.CurrencyConfig) {
	currencyMu.Lock()
	defer currencyMu.Unlock()
	currencyCache = &currencyEntry{data: data, fetchedAt: time.Now()}
}

// ── Search result cache ──────────────────────────────────────────────────────
// Keyed by normalized query. Short TTL: this replaces the old storefront's
// keystroke debounce as the thing that keeps repeat searches cheap.

type searchEntry struct {
	data      []models.Product
	fetchedAt time.Time
}

var (
	searchMu    sync.RWMutex
	searchCache = map[string]*searchEntry{}
)

func GetSearch(query string) ([]models.Product, bool) {
	searchMu.RLock()
	defer searchMu.RUnlock()
	if e, ok := searchCache[query]; ok && time.Since(e.fetchedAt) < SearchTTL {
		return e.data, true
	}
	return nil, false
}

func SetSearch(query string, data []models.Product) {
	searchMu.Lock()
	defer searchMu.Unlock()
	searchCache[query] = &searchEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything ────────────────────────────────────────────────────

func Invalidate() {
	productsMu.Lock()
	productsCache = nil
	productsMu.Unlock()

	categoriesMu.Lock()
	categoriesCache = nil
	categoriesMu.Unlock()

	currencyMu.Lock()
	currencyCache = nil
	currencyMu.Unlock()

	searchMu.Lock()
	searchCache = map[string]*searchEntry{}
	searchMu.Unlock()
}

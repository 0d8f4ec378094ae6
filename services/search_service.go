package services

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	catalog_cache "github.com/Velora-Ecommerce/velora-storefront-gateway/cache"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// SearchService fronts backend text search. Identical queries arriving
// together share one upstream call, and settled results are cached for a
// short window. Together these fill the role the old storefront's 300ms
// keystroke debounce played.
type SearchService struct {
	client *StorefrontClient
	group  singleflight.Group
}

func NewSearchService(client *StorefrontClient) *SearchService {
	return &SearchService{client: client}
}

func (s *SearchService) Search(ctx context.Context, query string) ([]models.Product, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return []models.Product{}, nil
	}

	if cached, ok := catalog_cache.GetSearch(key); ok {
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		products, err := s.client.SearchProducts(ctx, key)
		if err != nil {
			return nil, err
		}
		catalog_cache.SetSearch(key, products)
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Product), nil
}

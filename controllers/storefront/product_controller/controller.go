package product_controller

import (
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
)

var (
	client        *services.StorefrontClient
	searchService *services.SearchService
)

// Init wires the upstream client into this controller. Call once at
// startup before routes are registered.
func Init(c *services.StorefrontClient, s *services.SearchService) {
	client = c
	searchService = s
}

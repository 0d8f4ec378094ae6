package engagement_controller

import (
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
)

var (
	client          *services.StorefrontClient
	currencyService *services.CurrencyService
)

// Init wires the upstream client into this controller.
func Init(c *services.StorefrontClient, cs *services.CurrencyService) {
	client = c
	currencyService = cs
}

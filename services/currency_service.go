package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	catalog_cache "github.com/Velora-Ecommerce/velora-storefront-gateway/cache"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// CurrencyService serves the backend currency config and converts display
// prices. Conversion is decimal math rounded to two places; float drift on
// price strings is not acceptable storefront behavior.
type CurrencyService struct {
	client *StorefrontClient
}

func NewCurrencyService(client *StorefrontClient) *CurrencyService {
	return &CurrencyService{client: client}
}

// Config returns the currency configuration, cached for CurrencyTTL.
func (s *CurrencyService) Config(ctx context.Context) (*models.CurrencyConfig, error) {
	if cfg, ok := catalog_cache.GetCurrency(); ok {
		return cfg, nil
	}
	cfg, err := s.client.GetCurrencyConfig(ctx)
	if err != nil {
		return nil, err
	}
	catalog_cache.SetCurrency(cfg)
	return cfg, nil
}

// Convert renders a base-currency amount in the requested display
// currency.
func (s *CurrencyService) Convert(ctx context.Context, amount float64, currency string) (*models.ConvertedPrice, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}
	if currency == "" || currency == cfg.Base {
		return &models.ConvertedPrice{
			Currency: cfg.Base,
			Symbol:   cfg.Symbols[cfg.Base],
			Amount:   amount,
		}, nil
	}
	rate, ok := cfg.Rates[currency]
	if !ok {
		return nil, fmt.Errorf("unsupported display currency %q", currency)
	}

	converted, _ := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rate)).
		Round(2).
		Float64()

	return &models.ConvertedPrice{
		Currency: currency,
		Symbol:   cfg.Symbols[currency],
		Amount:   converted,
	}, nil
}

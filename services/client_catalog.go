package services

import (
	"context"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

func (c *StorefrontClient) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categories", "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *StorefrontClient) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := c.get(ctx, "/categories/"+escape(slug), "", &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *StorefrontClient) GetCurrencyConfig(ctx context.Context) (*models.CurrencyConfig, error) {
	var cfg models.CurrencyConfig
	if err := c.get(ctx, "/currency/config", "", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

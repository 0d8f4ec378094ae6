package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// ListProducts fetches the full active product list. Filtering and sorting
// happen gateway-side in the catalog package.
func (c *StorefrontClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products", "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *StorefrontClient) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products/featured", "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *StorefrontClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/products/"+escape(id), "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *StorefrontClient) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/products/slug/"+escape(slug), "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *StorefrontClient) GetRelatedProducts(ctx context.Context, id string) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products/"+escape(id)+"/related", "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductColors returns the colour list for a product, including the
// backend's per-colour stock summary.
func (c *StorefrontClient) GetProductColors(ctx context.Context, id string) ([]models.ProductColor, error) {
	var colors []models.ProductColor
	if err := c.get(ctx, "/products/"+escape(id)+"/colors", "", &colors); err != nil {
		return nil, err
	}
	return colors, nil
}

// GetProductVariants returns the variants and available-size summary for
// one product+colour pair.
func (c *StorefrontClient) GetProductVariants(ctx context.Context, id, color string) (*models.VariantSet, error) {
	var set models.VariantSet
	path := fmt.Sprintf("/products/%s/variants/%s", escape(id), escape(color))
	if err := c.get(ctx, path, "", &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (c *StorefrontClient) GetProductImages(ctx context.Context, id, color string) ([]models.ProductImage, error) {
	var images []models.ProductImage
	path := fmt.Sprintf("/products/%s/images/%s", escape(id), escape(color))
	if err := c.get(ctx, path, "", &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *StorefrontClient) GetActiveFlashSales(ctx context.Context) ([]models.FlashSale, error) {
	var sales []models.FlashSale
	if err := c.get(ctx, "/products/flash-sales/active", "", &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// SearchProducts runs a backend text search. Callers go through
// SearchService, which coalesces duplicate in-flight queries.
func (c *StorefrontClient) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	var products []models.Product
	path := "/search?q=" + url.QueryEscape(query)
	if err := c.get(ctx, path, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

package services

import (
	"context"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// Address management is proxied verbatim; the backend owns the records.

func (c *StorefrontClient) GetAddresses(ctx context.Context, token string) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.get(ctx, "/user/addresses", token, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *StorefrontClient) AddAddress(ctx context.Context, token string, req models.AddAddressRequest) (*models.Address, error) {
	var address models.Address
	if err := c.post(ctx, "/user/addresses", token, req, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (c *StorefrontClient) UpdateAddress(ctx context.Context, token, id string, req models.UpdateAddressRequest) (*models.Address, error) {
	var address models.Address
	if err := c.put(ctx, "/user/addresses/"+escape(id), token, req, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (c *StorefrontClient) DeleteAddress(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/user/addresses/"+escape(id), token)
}

func (c *StorefrontClient) SetDefaultAddress(ctx context.Context, token, id string) error {
	return c.put(ctx, "/user/addresses/"+escape(id)+"/default", token, nil, nil)
}

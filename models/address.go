package models

// Address records belong to the backend; the gateway proxies address CRUD
// for authenticated shoppers.
type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

type AddAddressRequest struct {
	Label     string `json:"label"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"isDefault"`
}

type UpdateAddressRequest struct {
	Label     *string `json:"label"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
	Country   *string `json:"country"`
	Phone     *string `json:"phone"`
	IsDefault *bool   `json:"isDefault"`
}

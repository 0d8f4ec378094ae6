package models

// Category is a storefront category node. ProductCount and Subcategories
// are populated by the backend; the gateway never recomputes them.
type Category struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	ParentID      *string    `json:"parentId,omitempty"`
	ProductCount  int        `json:"productCount"`
	Subcategories []Category `json:"subcategories,omitempty"`
}

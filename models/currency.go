package models

// CurrencyConfig is the backend's currency configuration: a base currency
// plus the multipliers the storefront may display prices in.
type CurrencyConfig struct {
	Base       string             `json:"base"`
	Symbols    map[string]string  `json:"symbols,omitempty"`
	Rates      map[string]float64 `json:"rates"`
	UpdatedAt  string             `json:"updatedAt,omitempty"`
	DisplayFmt string             `json:"displayFmt,omitempty"`
}

// ConvertedPrice is a price rendered in a requested display currency.
type ConvertedPrice struct {
	Currency string  `json:"currency"`
	Symbol   string  `json:"symbol,omitempty"`
	Amount   float64 `json:"amount"`
}

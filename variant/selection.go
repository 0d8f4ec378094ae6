// Package variant drives colour/size selection for a product detail view:
// loading the colour list, loading variants for the chosen colour,
// auto-selecting sensible defaults and deriving price/stock for the
// current colour+size pair.
package variant

import (
	"context"
	"sync"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// Source supplies colour and variant data for a product. The upstream
// storefront client satisfies it.
type Source interface {
	GetProductColors(ctx context.Context, productID string) ([]models.ProductColor, error)
	GetProductVariants(ctx context.Context, productID, color string) (*models.VariantSet, error)
}

type Status string

const (
	StatusNoColor         Status = "no-color-selected"
	StatusColorsLoading   Status = "colors-loading"
	StatusVariantsLoading Status = "variants-loading"
	StatusReady           Status = "ready"
	StatusError           Status = "error"
)

// DefaultLowStockThreshold marks variants shown with a "only a few left"
// hint.
const DefaultLowStockThreshold = 5

// Selection is the settled (colour, size, variant) triple emitted to
// subscribers.
type Selection struct {
	Color     string
	Size      string
	VariantID string
}

type Listener func(Selection)

// Engine holds selection state for one product. A fetch failure leaves the
// previously loaded data in place; callers render the last good state next
// to the error.
type Engine struct {
	mu  sync.Mutex
	src Source

	product   models.Product
	threshold int

	status Status
	errMsg string

	colors   []models.ProductColor
	set      *models.VariantSet
	color    string
	size     string
	listener Listener
	last     *Selection
}

type Option func(*Engine)

func WithLowStockThreshold(n int) Option {
	return func(e *Engine) { e.threshold = n }
}

// OnChange registers the selection listener. It fires only when the
// settled triple differs structurally from the last one emitted; listeners
// must still tolerate equal values arriving across reloads.
func OnChange(fn Listener) Option {
	return func(e *Engine) { e.listener = fn }
}

func NewEngine(src Source, product models.Product, opts ...Option) *Engine {
	e := &Engine{
		src:       src,
		product:   product,
		threshold: DefaultLowStockThreshold,
		status:    StatusNoColor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init loads the colour list and auto-selects a default colour: the first
// colour the backend reports stock for, else the first colour listed.
// Selecting the colour loads its variants.
func (e *Engine) Init(ctx context.Context) error {
	e.mu.Lock()
	e.status = StatusColorsLoading
	productID := e.product.ID
	e.mu.Unlock()

	colors, err := e.src.GetProductColors(ctx, productID)
	if err != nil {
		e.fail("failed to load colors: " + err.Error())
		return err
	}

	e.mu.Lock()
	e.colors = colors
	e.errMsg = ""
	if len(colors) == 0 {
		e.status = StatusNoColor
		e.mu.Unlock()
		return nil
	}
	pick := colors[0].Name
	for _, c := range colors {
		if c.HasStock {
			pick = c.Name
			break
		}
	}
	e.mu.Unlock()

	return e.SelectColor(ctx, pick)
}

// SelectColor loads variants for the colour and resets the selected size.
// If no size is selected after the load, the first entry of the backend's
// available-sizes summary is chosen; that summary, not raw variant stock,
// decides availability.
func (e *Engine) SelectColor(ctx context.Context, color string) error {
	e.mu.Lock()
	e.status = StatusVariantsLoading
	productID := e.product.ID
	e.mu.Unlock()

	set, err := e.src.GetProductVariants(ctx, productID, color)
	if err != nil {
		e.fail("failed to load variants: " + err.Error())
		return err
	}

	e.mu.Lock()
	e.set = set
	e.color = color
	e.size = ""
	e.errMsg = ""
	if len(set.AvailableSizes) > 0 {
		e.size = set.AvailableSizes[0]
	}
	e.status = StatusReady
	e.mu.Unlock()

	e.emit()
	return nil
}

// SelectSize sets the size for the current colour.
func (e *Engine) SelectSize(size string) {
	e.mu.Lock()
	e.size = size
	e.mu.Unlock()
	e.emit()
}

func (e *Engine) fail(msg string) {
	e.mu.Lock()
	e.errMsg = msg
	e.status = StatusError
	e.mu.Unlock()
}

func (e *Engine) emit() {
	e.mu.Lock()
	if e.listener == nil {
		e.mu.Unlock()
		return
	}
	sel := Selection{Color: e.color, Size: e.size}
	if v := e.selectedVariantLocked(); v != nil {
		sel.VariantID = v.ID
	}
	if e.last != nil && *e.last == sel {
		e.mu.Unlock()
		return
	}
	e.last = &sel
	fn := e.listener
	e.mu.Unlock()
	fn(sel)
}

// ─────────────────────────────────────────────────────────────
// Derived values
// ─────────────────────────────────────────────────────────────

func (e *Engine) selectedVariantLocked() *models.ProductVariant {
	if e.set == nil {
		return nil
	}
	for i := range e.set.Variants {
		v := &e.set.Variants[i]
		if v.Size == e.size && v.Color == e.color {
			return v
		}
	}
	return nil
}

// SelectedVariant returns the variant matching the current colour+size, or
// nil when none matches.
func (e *Engine) SelectedVariant() *models.ProductVariant {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selectedVariantLocked()
}

// CurrentPrice is the variant price override when present, else the
// product base price.
func (e *Engine) CurrentPrice() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v := e.selectedVariantLocked(); v != nil && v.Price != nil {
		return *v.Price
	}
	return e.product.Price
}

// ComparePrice and sale data come from the product, never the variant.
func (e *Engine) ComparePrice() *float64 { return e.product.ComparePrice }
func (e *Engine) IsOnSale() bool         { return e.product.IsOnSale }
func (e *Engine) SalePrice() *float64    { return e.product.SalePrice }

// Purchasable reports whether the selected variant can be bought: stock on
// hand, or backorder allowed.
func (e *Engine) Purchasable() bool {
	v := e.SelectedVariant()
	if v == nil {
		return false
	}
	return v.Stock > 0 || v.AllowBackorder
}

// LowStock is true when stock is positive but at or under the threshold.
func (e *Engine) LowStock() bool {
	v := e.SelectedVariant()
	if v == nil {
		return false
	}
	return v.Stock > 0 && v.Stock <= e.threshold
}

func (e *Engine) Status() Status { return e.statusSnapshot() }

func (e *Engine) statusSnapshot() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Engine) Err() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

func (e *Engine) Colors() []models.ProductColor {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.colors
}

func (e *Engine) AvailableSizes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set == nil {
		return nil
	}
	return e.set.AvailableSizes
}

func (e *Engine) SelectedColor() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.color
}

func (e *Engine) SelectedSize() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.size
}

// Snapshot is the JSON view served by the selection endpoint.
type Snapshot struct {
	Status         Status                 `json:"status"`
	Error          string                 `json:"error,omitempty"`
	Colors         []models.ProductColor  `json:"colors"`
	SelectedColor  string                 `json:"selectedColor"`
	SelectedSize   string                 `json:"selectedSize"`
	AvailableSizes []string               `json:"availableSizes"`
	Variant        *models.ProductVariant `json:"variant,omitempty"`
	CurrentPrice   float64                `json:"currentPrice"`
	ComparePrice   *float64               `json:"comparePrice,omitempty"`
	IsOnSale       bool                   `json:"isOnSale"`
	SalePrice      *float64               `json:"salePrice,omitempty"`
	Purchasable    bool                   `json:"purchasable"`
	LowStock       bool                   `json:"lowStock"`
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Status:         e.Status(),
		Error:          e.Err(),
		Colors:         e.Colors(),
		SelectedColor:  e.SelectedColor(),
		SelectedSize:   e.SelectedSize(),
		AvailableSizes: e.AvailableSizes(),
		Variant:        e.SelectedVariant(),
		CurrentPrice:   e.CurrentPrice(),
		ComparePrice:   e.ComparePrice(),
		IsOnSale:       e.IsOnSale(),
		SalePrice:      e.SalePrice(),
		Purchasable:    e.Purchasable(),
		LowStock:       e.LowStock(),
	}
}

// Package session owns per-shopper state: cart, wishlist, recently viewed
// products and the local interaction log. State is an explicit object
// loaded and saved through a Persister; nothing in here reaches for
// ambient globals.
package session

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

const (
	// MaxRecentlyViewed caps the recently-viewed list; oldest entries are
	// evicted first.
	MaxRecentlyViewed = 20
	// MaxInteractions caps the append-only interaction log to the most
	// recent entries.
	MaxInteractions = 1000
)

// State is one shopper's session state. Mutators are plain methods; all
// mutation for a session happens within a single request, so no locking
// lives here.
type State struct {
	SessionID      string                         `json:"sessionId"`
	Cart           []models.CartItem              `json:"cart"`
	Wishlist       []models.WishlistItem          `json:"wishlist"`
	RecentlyViewed []models.RecentlyViewedProduct `json:"recentlyViewed"`
	Interactions   []models.UserInteraction       `json:"interactions"`
	UpdatedAt      time.Time                      `json:"updatedAt"`
}

// NewState creates an empty session with a fresh opaque id. The id groups
// interaction-log entries; it is not a server auth session.
func NewState() *State {
	return &State{
		SessionID:      uuid.NewString(),
		Cart:           []models.CartItem{},
		Wishlist:       []models.WishlistItem{},
		RecentlyViewed: []models.RecentlyViewedProduct{},
		Interactions:   []models.UserInteraction{},
		UpdatedAt:      time.Now().UTC(),
	}
}

func (s *State) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// ─────────────────────────────────────────────────────────────
// Cart
// ─────────────────────────────────────────────────────────────

// AddCartItem merges into an existing line with the same product, size and
// colour, otherwise appends a new line.
func (s *State) AddCartItem(item models.CartItem) {
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}
	for i := range s.Cart {
		line := &s.Cart[i]
		if line.ProductID == item.ProductID && line.Size == item.Size && line.Color == item.Color {
			line.Quantity += item.Quantity
			s.touch()
			return
		}
	}
	s.Cart = append(s.Cart, item)
	s.touch()
}

// SetCartQuantity updates a line's quantity; zero removes the line.
// Returns false when no matching line exists.
func (s *State) SetCartQuantity(productID, size, color string, quantity int) bool {
	for i := range s.Cart {
		line := &s.Cart[i]
		if line.ProductID == productID && line.Size == size && line.Color == color {
			if quantity <= 0 {
				s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			} else {
				line.Quantity = quantity
			}
			s.touch()
			return true
		}
	}
	return false
}

func (s *State) RemoveCartItem(productID, size, color string) bool {
	return s.SetCartQuantity(productID, size, color, 0)
}

func (s *State) ClearCart() {
	s.Cart = []models.CartItem{}
	s.touch()
}

// CartCount is the total unit count across lines.
func (s *State) CartCount() int {
	n := 0
	for _, line := range s.Cart {
		n += line.Quantity
	}
	return n
}

// CartSubtotal sums line price × quantity.
func (s *State) CartSubtotal() float64 {
	total := 0.0
	for _, line := range s.Cart {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ─────────────────────────────────────────────────────────────
// Wishlist
// ─────────────────────────────────────────────────────────────

// AddToWishlist is a no-op when the product is already wishlisted.
func (s *State) AddToWishlist(item models.WishlistItem) {
	if s.IsInWishlist(item.ProductID) {
		return
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}
	s.Wishlist = append(s.Wishlist, item)
	s.touch()
}

func (s *State) RemoveFromWishlist(productID string) bool {
	for i := range s.Wishlist {
		if s.Wishlist[i].ProductID == productID {
			s.Wishlist = append(s.Wishlist[:i], s.Wishlist[i+1:]...)
			s.touch()
			return true
		}
	}
	return false
}

func (s *State) IsInWishlist(productID string) bool {
	for _, item := range s.Wishlist {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *State) ClearWishlist() {
	s.Wishlist = []models.WishlistItem{}
	s.touch()
}

// ─────────────────────────────────────────────────────────────
// Recently viewed
// ─────────────────────────────────────────────────────────────

// RecordView puts the product at the front of the recently-viewed list.
// Re-viewing an already-listed product moves it to the front without
// duplicating; the list never exceeds MaxRecentlyViewed.
func (s *State) RecordView(p models.RecentlyViewedProduct) {
	if p.ViewedAt.IsZero() {
		p.ViewedAt = time.Now().UTC()
	}
	filtered := make([]models.RecentlyViewedProduct, 0, len(s.RecentlyViewed)+1)
	filtered = append(filtered, p)
	for _, existing := range s.RecentlyViewed {
		if existing.ProductID != p.ProductID {
			filtered = append(filtered, existing)
		}
	}
	if len(filtered) > MaxRecentlyViewed {
		filtered = filtered[:MaxRecentlyViewed]
	}
	s.RecentlyViewed = filtered
	s.touch()
}

// ─────────────────────────────────────────────────────────────
// Interaction log
// ─────────────────────────────────────────────────────────────

// RecordInteraction appends an event, evicting the oldest entries beyond
// MaxInteractions. The log stays on this session; it is never shipped to a
// server analytics pipeline.
func (s *State) RecordInteraction(ev models.UserInteraction) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	ev.SessionID = s.SessionID
	s.Interactions = append(s.Interactions, ev)
	if len(s.Interactions) > MaxInteractions {
		s.Interactions = s.Interactions[len(s.Interactions)-MaxInteractions:]
	}
	s.touch()
}

// PopularProducts ranks product ids by interaction count within this
// session's log.
func (s *State) PopularProducts(limit int) []models.PopularEntry {
	counts := map[string]int{}
	for _, ev := range s.Interactions {
		if ev.TargetID == "" {
			continue
		}
		switch ev.Type {
		case models.InteractionView, models.InteractionCart, models.InteractionWishlist:
			counts[ev.TargetID]++
		}
	}
	return topEntries(counts, limit)
}

// PopularCategories ranks category names seen on view/filter events.
func (s *State) PopularCategories(limit int) []models.PopularEntry {
	counts := map[string]int{}
	for _, ev := range s.Interactions {
		if ev.Category != "" {
			counts[ev.Category]++
		}
	}
	return topEntries(counts, limit)
}

func topEntries(counts map[string]int, limit int) []models.PopularEntry {
	entries := make([]models.PopularEntry, 0, len(counts))
	for id, n := range counts {
		entries = append(entries, models.PopularEntry{ID: id, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].ID < entries[j].ID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

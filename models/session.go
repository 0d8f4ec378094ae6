package models

import "time"

// ═══════════════════════════════════════════════════════════
// Session State Models
// ═══════════════════════════════════════════════════════════
//
// Denormalized product snapshots held per shopping session. The session
// package owns mutation rules (caps, eviction, dedupe); these are the
// persisted shapes.

type CartItem struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
	Image     string    `json:"image,omitempty"`
	Price     float64   `json:"price"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

type WishlistItem struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
	Image     string    `json:"image,omitempty"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"addedAt"`
}

type RecentlyViewedProduct struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
	Image     string    `json:"image,omitempty"`
	Price     float64   `json:"price"`
	ViewedAt  time.Time `json:"viewedAt"`
}

// InteractionType enumerates the events the local interaction log accepts.
type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionSearch   InteractionType = "search"
	InteractionFilter   InteractionType = "filter"
	InteractionCart     InteractionType = "cart"
	InteractionWishlist InteractionType = "wishlist"
)

// UserInteraction is one entry of the append-only local event log. It feeds
// client-side popularity heuristics only and is never shipped to an
// analytics pipeline.
type UserInteraction struct {
	ID        string          `json:"id"`
	Type      InteractionType `json:"type"`
	TargetID  string          `json:"targetId"`
	Category  string          `json:"category,omitempty"`
	Query     string          `json:"query,omitempty"`
	SessionID string          `json:"sessionId"`
	Timestamp time.Time       `json:"timestamp"`
}

// PopularEntry is a locally computed popularity row.
type PopularEntry struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// ─────────────────────────────────────────────────────────────
// Session endpoint requests
// ─────────────────────────────────────────────────────────────

type AddCartItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Slug      string  `json:"slug"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"min=0"`
	Size      string  `json:"size" binding:"required"`
	Color     string  `json:"color" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=0"`
}

type AddWishlistItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Slug      string  `json:"slug"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"min=0"`
}

type RecordViewRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Slug      string  `json:"slug"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"min=0"`
}

type RecordInteractionRequest struct {
	Type     InteractionType `json:"type" binding:"required,oneof=view search filter cart wishlist"`
	TargetID string          `json:"targetId"`
	Category string          `json:"category"`
	Query    string          `json:"query"`
}

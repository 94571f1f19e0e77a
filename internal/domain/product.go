package domain

import (
	"time"

	"github.com/google/uuid"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
)

// DefaultCurrency is applied when a product is created without one.
const DefaultCurrency = CurrencyINR

type Price struct {
	Amount   float64  `json:"amount" db:"amount"`
	Currency Currency `json:"currency" db:"currency"`
}

// ProductImage describes one stored image. FileID is the storage provider's
// identifier, serialized as "id" to match the public API.
type ProductImage struct {
	URL          string `json:"url" db:"url"`
	ThumbnailURL string `json:"thumbnailUrl" db:"thumbnail_url"`
	FileID       string `json:"id" db:"file_id"`
}

type Product struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Price       Price          `json:"price" db:"price"`
	SellerID    uuid.UUID      `json:"seller" db:"seller_id"`
	Images      []ProductImage `json:"images" db:"-"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/volatiletech/null"
)

type AvailabilityFilter string

const (
	AvailabilityAll         AvailabilityFilter = "all"
	AvailabilityAvailable   AvailabilityFilter = "available"
	AvailabilityUnavailable AvailabilityFilter = "unavailable"
)

// AllCategories is the sentinel category meaning no category filtering.
const AllCategories = "All"

type Product struct {
	ID                int            `json:"id" db:"id"`
	Name              string         `json:"name" db:"name"`
	Description       string         `json:"description" db:"description"`
	Category          string         `json:"category" db:"category"`
	Tags              pq.StringArray `json:"tags" db:"tags"`
	Features          pq.StringArray `json:"features" db:"features"`
	PricePerDay       float64        `json:"pricePerDay" db:"price_per_day"`
	PricePerWeek      null.Float64   `json:"pricePerWeek" db:"price_per_week"`
	PricePerMonth     null.Float64   `json:"pricePerMonth" db:"price_per_month"`
	OriginalPrice     null.Float64   `json:"originalPrice" db:"original_price"`
	InStock           bool           `json:"inStock" db:"in_stock"`
	StockCount        int            `json:"stockCount" db:"stock_count"`
	Rating            float64        `json:"rating" db:"rating"`
	ReviewCount       int            `json:"reviewCount" db:"review_count"`
	Lat               float64        `json:"lat" db:"lat"`
	Lng               float64        `json:"lng" db:"lng"`
	Address           string         `json:"address" db:"address"`
	City              string         `json:"city" db:"city"`
	Country           string         `json:"country" db:"country"`
	OwnerID           int            `json:"ownerID" db:"owner_id"`
	OwnerName         string         `json:"ownerName" db:"owner_name"`
	OwnerRating       float64        `json:"ownerRating" db:"owner_rating"`
	MinRentalDays     int            `json:"minRentalDays" db:"min_rental_days"`
	MaxRentalDays     int            `json:"maxRentalDays" db:"max_rental_days"`
	CreatedAt         time.Time      `json:"-" db:"created_at"`
	ArchivedAt        null.Time      `json:"archivedAt,omitempty" db:"archived_at"`
	ProductImageLinks []string       `json:"productImageLinks" db:"-"`
}

type ProductCategory struct {
	ID        int       `json:"id" db:"id"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

type Favorite struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userID" db:"user_id"`
	ProductID int       `json:"productID" db:"product_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

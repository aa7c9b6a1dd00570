package models

import "time"

// Entry is one saved catalog item in a user's wishlist or collection,
// joined with the catalog attributes the frontend renders.
type Entry struct {
	ID             int64     `db:"id" json:"id"`
	ProductID      int64     `db:"product_id" json:"productId"`
	Name           string    `db:"name" json:"name"`
	MarketValue    float64   `db:"market_value" json:"marketValue"`
	ImageThumbnail string    `db:"image_thumbnail" json:"imageThumbnail"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

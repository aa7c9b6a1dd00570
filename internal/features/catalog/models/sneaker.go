package models

// Sneaker is a catalog item. The server never mutates these rows; the
// ingestion script populates them out-of-band.
type Sneaker struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Brand          string  `db:"brand" json:"brand"`
	Colorway       string  `db:"colorway" json:"colorway"`
	MarketValue    float64 `db:"market_value" json:"marketValue"`
	Gender         string  `db:"gender" json:"gender"`
	ImageOriginal  string  `db:"image_original" json:"imageOriginal"`
	ImageThumbnail string  `db:"image_thumbnail" json:"imageThumbnail"`
	ReleaseDate    string  `db:"release_date" json:"releaseDate"`
}

// Filters is the conjunction of optional catalog predicates. Character
// is a substring match on the name, kept under its historical query
// parameter name.
type Filters struct {
	Brand          string
	Gender         string
	Character      string
	MinMarketValue *float64
	MaxMarketValue *float64
}

// Page is the paginated listing response.
type Page struct {
	Items       []Sneaker `json:"items"`
	TotalItems  int       `json:"totalItems"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

package domain

import "time"

type Category struct {
	ID   int64
	Name string
	Slug string
}

// Product prices arrive as decimal strings and are kept as-is; the client
// never does money arithmetic that the server is authoritative for.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       string
	Category    string
	Stock       int
	Image       string
	IsFeatured  bool
	Rating      float64
}

type ProductSummary struct {
	ID    int64
	Name  string
	Price string
	Image string
}

type Review struct {
	ID        int64
	ProductID int64
	User      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// ProductFilter mirrors the listing endpoint's query parameters. Zero
// values are omitted from the request.
type ProductFilter struct {
	Search   string
	Category string
	MinPrice string
	MaxPrice string
	Ordering string
}

package product

import "math"

// Product maps to the `products` table. DiscountPrice and
// DiscountPercentage are mutually exclusive; validation rejects payloads
// carrying both. The joined sub-category/category fields are filled by
// list queries for the admin screens and omitted elsewhere.
type Product struct {
	ID                 int      `json:"productId"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	ImageURL           string   `json:"imageUrl,omitempty"`
	Price              float64  `json:"price"`
	DiscountPrice      *float64 `json:"discountPrice,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	Features           []string `json:"features,omitempty"`
	SubCategoryID      int      `json:"subCategoryId"`
	CreatedAt          string   `json:"createdAt,omitempty"`

	SubCategoryName string `json:"subCategoryName,omitempty"`
	CategoryID      int    `json:"categoryId,omitempty"`
	CategoryName    string `json:"categoryName,omitempty"`
}

// FinalPrice is the display price after the discount: price minus the flat
// discount, or price minus the percentage cut, rounded to two decimals.
func (p Product) FinalPrice() float64 {
	final := p.Price
	if p.DiscountPrice != nil {
		final = p.Price - *p.DiscountPrice
	} else if p.DiscountPercentage != nil {
		final = p.Price - p.Price**p.DiscountPercentage/100
	}
	return math.Round(final*100) / 100
}

// Filter narrows the admin product list. Zero values mean "no filter".
type Filter struct {
	CategoryID    int
	SubCategoryID int
	Query         string
}

package models

import "encoding/json"

// Product is the storefront-facing shape of a catalog product. The validate
// tags describe the invariants every transformed product satisfies.
type Product struct {
	ID               int               `json:"id" validate:"gt=0"`
	Name             string            `json:"name" validate:"required"`
	Slug             string            `json:"slug" validate:"required"`
	Price            string            `json:"price" validate:"required"`
	RegularPrice     string            `json:"regularPrice" validate:"required"`
	SalePrice        *string           `json:"salePrice,omitempty"`
	OnSale           bool              `json:"onSale"`
	Image            []string          `json:"image" validate:"required,min=1,dive,required"`
	ImageAlt         []string          `json:"imageAlt" validate:"required,eqfield=Image"`
	Category         string            `json:"category" validate:"required"`
	Tags             []string          `json:"tags" validate:"required"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"shortDescription"`
	Featured         bool              `json:"featured"`
	TotalSales       int               `json:"totalSales"`
	StockStatus      string            `json:"stockStatus"`
	StockQuantity    *int              `json:"stockQuantity"`
	Weight           string            `json:"weight"`
	Dimensions       Dimensions        `json:"dimensions"`
	ShippingClass    string            `json:"shippingClass"`
	ShippingClassID  int               `json:"shippingClassId"`
	Attributes       []json.RawMessage `json:"attributes"`
	Variations       []int             `json:"variations"`
	RelatedIDs       []int             `json:"relatedIds"`
	UpsellIDs        []int             `json:"upsellIds"`
	CrossSellIDs     []int             `json:"crossSellIds"`
	ReviewsAllowed   bool              `json:"reviewsAllowed"`
	AverageRating    string            `json:"averageRating"`
	RatingCount      int               `json:"ratingCount"`
	Permalink        string            `json:"permalink"`
}

type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// ProductPage is one page of products plus the totals reported by the backend.
type ProductPage struct {
	Products   []Product `json:"products"`
	TotalPages int       `json:"totalPages"`
	TotalItems int       `json:"totalItems"`
}

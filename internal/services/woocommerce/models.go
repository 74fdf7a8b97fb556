package woocommerce

import "encoding/json"

// Product represents a WooCommerce product as returned by /products.
type Product struct {
	ID                int               `json:"id" validate:"required"`
	Name              string            `json:"name"`
	Slug              string            `json:"slug"`
	Permalink         string            `json:"permalink"`
	DateCreated       string            `json:"date_created"`
	DateModified      string            `json:"date_modified"`
	Type              string            `json:"type"`
	Status            string            `json:"status"`
	Featured          bool              `json:"featured"`
	CatalogVisibility string            `json:"catalog_visibility"`
	Description       string            `json:"description"`
	ShortDescription  string            `json:"short_description"`
	SKU               string            `json:"sku"`
	Price             string            `json:"price"`
	RegularPrice      string            `json:"regular_price"`
	SalePrice         string            `json:"sale_price"`
	OnSale            bool              `json:"on_sale"`
	Purchasable       bool              `json:"purchasable"`
	TotalSales        int               `json:"total_sales"`
	Virtual           bool              `json:"virtual"`
	Downloadable      bool              `json:"downloadable"`
	ExternalURL       string            `json:"external_url"`
	ButtonText        string            `json:"button_text"`
	TaxStatus         string            `json:"tax_status"`
	TaxClass          string            `json:"tax_class"`
	ManageStock       bool              `json:"manage_stock"`
	StockQuantity     *int              `json:"stock_quantity"`
	StockStatus       string            `json:"stock_status"`
	Backorders        string            `json:"backorders"`
	BackordersAllowed bool              `json:"backorders_allowed"`
	Backordered       bool              `json:"backordered"`
	SoldIndividually  bool              `json:"sold_individually"`
	Weight            string            `json:"weight"`
	Dimensions        Dimensions        `json:"dimensions"`
	ShippingRequired  bool              `json:"shipping_required"`
	ShippingTaxable   bool              `json:"shipping_taxable"`
	ShippingClass     string            `json:"shipping_class"`
	ShippingClassID   int               `json:"shipping_class_id"`
	ReviewsAllowed    bool              `json:"reviews_allowed"`
	AverageRating     string            `json:"average_rating"`
	RatingCount       int               `json:"rating_count"`
	RelatedIDs        []int             `json:"related_ids"`
	UpsellIDs         []int             `json:"upsell_ids"`
	CrossSellIDs      []int             `json:"cross_sell_ids"`
	ParentID          int               `json:"parent_id"`
	PurchaseNote      string            `json:"purchase_note"`
	Categories        []Term            `json:"categories"`
	Tags              []Term            `json:"tags"`
	Images            []Image           `json:"images"`
	Attributes        []json.RawMessage `json:"attributes"`
	DefaultAttributes []json.RawMessage `json:"default_attributes"`
	Variations        []int             `json:"variations"`
	GroupedProducts   []int             `json:"grouped_products"`
	MenuOrder         int               `json:"menu_order"`
}

// Term is a category or tag reference embedded in a product.
type Term struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Image struct {
	ID           int    `json:"id"`
	DateCreated  string `json:"date_created"`
	DateModified string `json:"date_modified"`
	Src          string `json:"src"`
	Name         string `json:"name"`
	Alt          string `json:"alt"`
}

type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Category represents a WooCommerce product category.
type Category struct {
	ID          int       `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Parent      int       `json:"parent"`
	Description string    `json:"description"`
	Display     string    `json:"display"`
	Image       *CatImage `json:"image"`
	MenuOrder   int       `json:"menu_order"`
	Count       int       `json:"count"`
}

type CatImage struct {
	ID  int    `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Review represents a WooCommerce product review.
type Review struct {
	ID                 int               `json:"id" validate:"required"`
	DateCreated        string            `json:"date_created"`
	DateCreatedGMT     string            `json:"date_created_gmt"`
	ProductID          int               `json:"product_id"`
	Status             string            `json:"status"`
	Reviewer           string            `json:"reviewer"`
	ReviewerEmail      string            `json:"reviewer_email"`
	Review             string            `json:"review"`
	Rating             int               `json:"rating"`
	Verified           bool              `json:"verified"`
	ReviewerAvatarURLs map[string]string `json:"reviewer_avatar_urls"`
}
